package kafka

import (
	"context"
	"testing"

	"github.com/clovisdasilvaneto/clockin/internal/events"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() OutboxEvent {
	return OutboxEvent{
		ID:        uuid.NewString(),
		RequestID: uuid.NewString(),
		ClockinID: uuid.NewString(),
		EventType: events.ClockinRecordedEvent,
		Payload:   []byte(`{"event_type":"clockin.recorded"}`),
		Status:    OutboxStatusPending,
	}
}

func TestOutboxRepository_Create_RunsOnCallerTx(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	event := pendingEvent()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO clockin_outbox`).
		WithArgs(event.ID, event.RequestID, event.ClockinID, event.EventType, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.WithTx(tx).Create(ctx, event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_RejectsInvalidEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := NewOutboxRepository(db)

	event := pendingEvent()
	event.EventType = "payroll.generated"

	err := repo.Create(context.Background(), event)
	assert.ErrorContains(t, err, "unknown punch event type")
	// nothing reaches the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed_SchedulesRetry(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec(`UPDATE clockin_outbox`).
		WithArgs(id, OutboxStatusFailed, "broker unreachable", maxRetryBackoff).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.MarkFailed(context.Background(), id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, ValidateOutboxEvent(pendingEvent()))

	missingClockin := pendingEvent()
	missingClockin.ClockinID = ""
	assert.Error(t, ValidateOutboxEvent(missingClockin))

	emptyPayload := pendingEvent()
	emptyPayload.Payload = nil
	assert.Error(t, ValidateOutboxEvent(emptyPayload))

	badStatus := pendingEvent()
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))

	deleted := pendingEvent()
	deleted.EventType = events.ClockinDeletedEvent
	assert.NoError(t, ValidateOutboxEvent(deleted))
}
