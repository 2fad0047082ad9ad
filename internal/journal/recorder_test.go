// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package journal_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/internal/journal"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/internal/mock"
	"github.com/MKhiriev/go-intercept/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newResponse(method, url string, status int, err error) *models.Response {
	return &models.Response{
		Request:  models.NewRequest(context.Background(), method, url),
		Status:   status,
		Duration: 42 * time.Millisecond,
		Err:      err,
	}
}

func TestRecorder_SavesEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	resp := newResponse(http.MethodPost, "/orders", http.StatusCreated, nil)

	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e journal.Entry) error {
			_, deadline := ctx.Deadline()
			assert.True(t, deadline)

			id, err := uuid.Parse(e.ID)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
			assert.Equal(t, "POST", e.Method)
			assert.Equal(t, "/orders", e.URL)
			assert.Equal(t, http.StatusCreated, e.Status)
			assert.Equal(t, 42*time.Millisecond, e.Duration)
			assert.Empty(t, e.Error)
			return nil
		})

	out, err := journal.Recorder(store, logger.Nop())(resp)
	require.NoError(t, err)
	assert.Same(t, resp, out)
}

func TestRecorder_SaveFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	resp := newResponse(http.MethodGet, "/", http.StatusOK, nil)

	out, err := journal.Recorder(store, log)(resp)
	require.NoError(t, err)
	assert.Same(t, resp, out)
	assert.Contains(t, buf.String(), "failed to record exchange")
	assert.Contains(t, buf.String(), "disk full")
}

func TestRecorder_CanceledRequestStillRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	resp := &models.Response{Request: models.NewRequest(ctx, http.MethodGet, "/"), Err: context.Canceled}

	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e journal.Entry) error {
			assert.NoError(t, ctx.Err())
			assert.Equal(t, context.Canceled.Error(), e.Error)
			return nil
		})

	_, err := journal.Recorder(store, nil)(resp)
	require.NoError(t, err)
}

func TestRecorder_InRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	reg := interceptor.New()
	reg.AddDeleteResponseInterceptor(journal.Recorder(store, nil))

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := reg.ReduceResponse(newResponse(http.MethodDelete, "/a", http.StatusNoContent, nil))
	require.NoError(t, err)
	_, err = reg.ReduceResponse(newResponse(http.MethodGet, "/a", http.StatusOK, nil))
	require.NoError(t, err)
}

func TestRecorder_NilResponseSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	out, err := journal.Recorder(store, nil)(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestNewEntry(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))

	e := journal.NewEntry("id-1", newResponse(http.MethodPut, "/x", 0, errors.New("refused")), at)
	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, "PUT", e.Method)
	assert.Equal(t, "/x", e.URL)
	assert.Equal(t, "refused", e.Error)
	assert.Equal(t, time.UTC, e.CreatedAt.Location())
	assert.True(t, at.Equal(e.CreatedAt))

	bare := journal.NewEntry("id-2", &models.Response{Status: 204}, at)
	assert.Empty(t, bare.Method)
	assert.Empty(t, bare.URL)
	assert.Equal(t, 204, bare.Status)
}
