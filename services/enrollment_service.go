package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/elegantedge/summer-school-backend/models"
	"github.com/elegantedge/summer-school-backend/repository"
)

// EnrollmentEventPublisher publishes enrollment events after a commit.
// Publishing is fire-and-forget; a nil publisher disables it.
type EnrollmentEventPublisher interface {
	PublishEnrollmentCompleted(ctx context.Context, event models.EnrollmentEvent) error
}

// CommitResult reports the outcome of the two side-effecting document
// operations a commit performs.
type CommitResult struct {
	DeletedCount int64       `json:"deletedCount"`
	InsertedID   interface{} `json:"insertedId"`
}

// EnrollmentCommitter performs the multi-collection transition that follows
// a confirmed payment: drop the cart entry, shift the class seat counters,
// and append the payment record.
//
// The sequence is deliberately not transactional, matching the behavior the
// web client was built against: a failure after the cart deletion leaves the
// entry gone with no compensating action, and replaying a submission moves
// the seat counters again. The seat adjustment itself is safe under
// concurrent payments because it is a relative $inc, not read-modify-write.
type EnrollmentCommitter struct {
	carts    repository.CartRepository
	classes  repository.ClassRepository
	payments repository.PaymentRepository
	events   EnrollmentEventPublisher
	log      *zap.Logger
}

func NewEnrollmentCommitter(
	carts repository.CartRepository,
	classes repository.ClassRepository,
	payments repository.PaymentRepository,
	events EnrollmentEventPublisher,
	log *zap.Logger,
) *EnrollmentCommitter {
	return &EnrollmentCommitter{
		carts:    carts,
		classes:  classes,
		payments: payments,
		events:   events,
		log:      log,
	}
}

// Commit runs the enrollment transition for one payment submission.
func (ec *EnrollmentCommitter) Commit(ctx context.Context, sub models.PaymentSubmission) (*CommitResult, error) {
	// Step 1: best-effort removal of the cart entry. A zero count means the
	// entry was already gone, which is not fatal.
	deleted, err := ec.carts.DeleteByID(ctx, sub.SelectedClassID)
	if err != nil && !errors.Is(err, repository.ErrInvalidID) {
		return nil, err
	}
	if deleted == 0 {
		ec.log.Warn("cart entry missing at payment time",
			zap.String("selected_class_id", sub.SelectedClassID),
			zap.String("email", sub.Email))
	}

	// Step 2: look up the class. Absence is logged, not rejected.
	if _, err := ec.classes.FindByID(ctx, sub.ClassID); err != nil {
		ec.log.Warn("class lookup failed during commit",
			zap.String("class_id", sub.ClassID),
			zap.Error(err))
	}

	// Step 3: one seat out of availability, one student into the roll.
	if _, err := ec.classes.AdjustEnrollment(ctx, sub.ClassID, -1, +1); err != nil {
		return nil, err
	}

	// Step 4: append the ledger record.
	record := &models.PaymentRecord{
		Email:           sub.Email,
		TransactionID:   sub.TransactionID,
		Price:           sub.Price,
		Date:            sub.Date,
		ClassID:         sub.ClassID,
		SelectedClassID: sub.SelectedClassID,
		ClassName:       sub.ClassName,
	}
	if record.Date.IsZero() {
		record.Date = time.Now().UTC()
	}

	insertedID, err := ec.payments.Insert(ctx, record)
	if err != nil {
		return nil, err
	}

	if ec.events != nil {
		event := models.EnrollmentEvent{
			Type:      "enrollment_completed",
			Email:     record.Email,
			ClassID:   record.ClassID,
			Price:     record.Price,
			Timestamp: record.Date,
		}
		if err := ec.events.PublishEnrollmentCompleted(ctx, event); err != nil {
			ec.log.Warn("failed to publish enrollment event", zap.Error(err))
		}
	}

	return &CommitResult{DeletedCount: deleted, InsertedID: insertedID}, nil
}

// EnrolledClasses returns the payments made by email joined with the
// current state of each paid-for class.
func (ec *EnrollmentCommitter) EnrolledClasses(ctx context.Context, email string) ([]models.EnrolledClass, error) {
	records, err := ec.payments.FindByEmail(ctx, email, false)
	if err != nil {
		return nil, err
	}

	enrolled := make([]models.EnrolledClass, 0, len(records))
	for _, record := range records {
		item := models.EnrolledClass{Payment: record}
		class, err := ec.classes.FindByID(ctx, record.ClassID)
		if err == nil {
			item.Class = class
		} else if !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, repository.ErrInvalidID) {
			return nil, err
		}
		enrolled = append(enrolled, item)
	}
	return enrolled, nil
}

// PaymentHistory returns the raw payment records for email, newest first.
func (ec *EnrollmentCommitter) PaymentHistory(ctx context.Context, email string) ([]models.PaymentRecord, error) {
	return ec.payments.FindByEmail(ctx, email, true)
}
