package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency_FirstRequestCachesStatusAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/clockins", Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": "p1"})
	})

	key := "idemp:/clockins::abc-1"
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(key, []byte(`{"status":201,"body":{"id":"p1"}}`), 24*time.Hour).SetVal("OK")
	mock.ExpectDel(key + ":lock").SetVal(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clockins", nil)
	req.Header.Set("Idempotency-Key", "abc-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplayKeepsOriginalStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/clockins", Idempotency(rdb), func(c *gin.Context) {
		t.Fatal("handler must not run on a replay")
	})

	mock.ExpectGet("idemp:/clockins::abc-1").
		SetVal(`{"status":201,"body":{"id":"p1"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clockins", nil)
	req.Header.Set("Idempotency-Key", "abc-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"id":"p1"}`, w.Body.String())
	assert.Equal(t, "true", w.Header().Get("X-Idempotent-Replay"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_SkipsRequestsWithoutKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/clockins", Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": "p1"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/clockins", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
