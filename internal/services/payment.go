package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/ssekandi/bookpay/internal/facades"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
	"github.com/ssekandi/bookpay/internal/status"
)

var (
	// ErrTransactionNotFound is returned when no transaction with the given uuid is known.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrStatusUnavailable is returned when a one-shot status check could not reach the provider.
	ErrStatusUnavailable = errors.New("transaction status unavailable")
)

// MoneyCollector submits collection requests to the payment provider.
type MoneyCollector interface {
	CollectMoney(ctx context.Context, amount int64, phoneNumber, description string) (*facades.CollectionResult, error)
}

// TransactionStorer is the in-memory source of truth for transactions.
type TransactionStorer interface {
	Append(tx models.Transaction) bool
	UpdateStatus(txUUID string, newStatus models.Status, updatedAt time.Time) bool
	Find(txUUID string) (models.Transaction, bool)
	ListByUser(userID uuid.UUID) []models.Transaction
}

// TransactionPersister mirrors transactions into durable storage.
type TransactionPersister interface {
	Save(ctx context.Context, tx models.Transaction) error
	UpdateStatus(ctx context.Context, txUUID string, newStatus models.Status, updatedAt time.Time) error
}

// TransactionLoader reads persisted transactions back: the full set for
// warm starts, single records and per-user lists as the read-path
// fallback when the in-memory store has no match.
type TransactionLoader interface {
	List(ctx context.Context) ([]models.Transaction, error)
	GetByUUID(ctx context.Context, txUUID string) (*models.Transaction, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// StatusPoller drives background status reconciliation per transaction uuid.
type StatusPoller interface {
	StartPolling(txUUID string, onUpdate StatusUpdateFunc, onError StatusErrorFunc)
	StopPolling(txUUID string)
	CheckOnce(ctx context.Context, txUUID string) *StatusResult
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PaymentService orchestrates book purchases: it submits the collection
// request, records the transaction, and keeps its status reconciled until
// it reaches a terminal state.
type PaymentService struct {
	gateway     MoneyCollector
	store       TransactionStorer
	persister   TransactionPersister
	loader      TransactionLoader
	poller      StatusPoller
	kafkaWriter KafkaWriter
	currency    string
}

// NewPaymentService creates a new PaymentService. persister, loader, and
// kafkaWriter may be nil; the in-memory store alone then carries state.
func NewPaymentService(
	gateway MoneyCollector,
	store TransactionStorer,
	persister TransactionPersister,
	loader TransactionLoader,
	poller StatusPoller,
	kafkaWriter KafkaWriter,
	currency string,
) *PaymentService {
	return &PaymentService{
		gateway:     gateway,
		store:       store,
		persister:   persister,
		loader:      loader,
		poller:      poller,
		kafkaWriter: kafkaWriter,
		currency:    currency,
	}
}

// Purchase submits a collection request for the given book. A transaction
// record exists only once the provider accepts the request; a rejected or
// failed request leaves no trace. On success, background polling for the
// returned uuid starts immediately.
func (s *PaymentService) Purchase(ctx context.Context, userID uuid.UUID, book models.Book, phoneNumber string) (models.Transaction, error) {
	res, err := s.gateway.CollectMoney(ctx, book.Price, phoneNumber, "Payment for "+book.Title)
	if err != nil {
		logger.Log.Errorw("collection request failed",
			"book_id", book.ID, "user_id", userID, "error", err)
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		UUID:        res.UUID,
		Reference:   res.Reference,
		BookID:      book.ID,
		BookTitle:   book.Title,
		Amount:      book.Price,
		Currency:    s.currency,
		PhoneNumber: phoneNumber,
		Status:      status.Map(res.ProviderStatus),
		CreatedAt:   time.Now(),
		UserID:      userID,
	}

	s.store.Append(tx)
	if s.persister != nil {
		if err := s.persister.Save(ctx, tx); err != nil {
			logger.Log.Errorw("failed to persist transaction", "uuid", tx.UUID, "error", err)
		}
	}
	s.publishEvent(ctx, tx.UUID, tx.BookID, tx.UserID, tx.Status)

	s.poller.StartPolling(tx.UUID, s.applyUpdate(tx.UUID), s.reportError(tx.UUID))

	return tx, nil
}

// Recheck performs a manual one-shot status check, distinct from polling,
// and writes the observation through the same path a poll tick would use.
// The transaction is resolved first so a record known only to the durable
// mirror lands in the store before the observation is applied.
func (s *PaymentService) Recheck(ctx context.Context, txUUID string) (models.Transaction, error) {
	if _, err := s.GetTransaction(ctx, txUUID); err != nil {
		return models.Transaction{}, err
	}

	res := s.poller.CheckOnce(ctx, txUUID)
	if res == nil {
		return models.Transaction{}, ErrStatusUnavailable
	}

	s.applyUpdate(txUUID)(*res)

	tx, ok := s.store.Find(txUUID)
	if !ok {
		return models.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

// GetTransaction returns the stored transaction for txUUID, falling back
// to the durable mirror for records the in-memory store does not hold.
func (s *PaymentService) GetTransaction(ctx context.Context, txUUID string) (models.Transaction, error) {
	if tx, ok := s.store.Find(txUUID); ok {
		return tx, nil
	}
	if s.loader == nil {
		return models.Transaction{}, ErrTransactionNotFound
	}

	tx, err := s.loader.GetByUUID(ctx, txUUID)
	if err != nil {
		logger.Log.Errorw("failed to load transaction", "uuid", txUUID, "error", err)
		return models.Transaction{}, ErrTransactionNotFound
	}
	if tx == nil {
		return models.Transaction{}, ErrTransactionNotFound
	}

	s.store.Append(*tx)
	return *tx, nil
}

// ListTransactions returns the user's transactions, falling back to the
// durable mirror when the in-memory store holds none for the user.
func (s *PaymentService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	txs := s.store.ListByUser(userID)
	if len(txs) > 0 || s.loader == nil {
		return txs, nil
	}

	persisted, err := s.loader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load transactions", "user_id", userID, "error", err)
		return txs, nil
	}
	for _, tx := range persisted {
		s.store.Append(tx)
	}
	return persisted, nil
}

// ResumePending rebuilds the in-memory store from the durable mirror and
// restarts polling for the transactions still awaiting a terminal status.
// Terminal rows are loaded too: read access depends on the successful
// ones surviving restarts. Called once at startup.
func (s *PaymentService) ResumePending(ctx context.Context) error {
	if s.loader == nil {
		return nil
	}

	persisted, err := s.loader.List(ctx)
	if err != nil {
		return err
	}

	resumed := 0
	for _, tx := range persisted {
		s.store.Append(tx)
		if tx.Status.IsTerminal() {
			continue
		}
		s.poller.StartPolling(tx.UUID, s.applyUpdate(tx.UUID), s.reportError(tx.UUID))
		resumed++
	}

	if len(persisted) > 0 {
		logger.Log.Infow("restored transactions from storage",
			"count", len(persisted), "resumed_polling", resumed)
	}
	return nil
}

// applyUpdate returns the onUpdate callback for txUUID: every observation
// goes store first, then the durable mirror and the event stream. The
// store decides whether the mutation is applied; rejected updates (stale
// observations after a terminal state) propagate nowhere.
func (s *PaymentService) applyUpdate(txUUID string) StatusUpdateFunc {
	return func(res StatusResult) {
		if !s.store.UpdateStatus(txUUID, res.Status, res.UpdatedAt) {
			return
		}

		if s.persister != nil {
			if err := s.persister.UpdateStatus(context.Background(), txUUID, res.Status, res.UpdatedAt); err != nil {
				logger.Log.Errorw("failed to persist status update",
					"uuid", txUUID, "status", res.Status, "error", err)
			}
		}

		tx, _ := s.store.Find(txUUID)
		s.publishEvent(context.Background(), txUUID, tx.BookID, tx.UserID, res.Status)
	}
}

func (s *PaymentService) reportError(txUUID string) StatusErrorFunc {
	return func(msg string) {
		logger.Log.Warnw("status reconciliation error", "uuid", txUUID, "message", msg)
	}
}

// paymentEvent is the Kafka payload published per observed transition.
type paymentEvent struct {
	TransactionUUID string `json:"transaction_uuid"`
	BookID          int64  `json:"book_id"`
	UserID          string `json:"user_id"`
	Status          string `json:"status"`
	Timestamp       int64  `json:"timestamp"`
}

// publishEvent publishes a status transition to Kafka.
func (s *PaymentService) publishEvent(ctx context.Context, txUUID string, bookID int64, userID uuid.UUID, st models.Status) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_uuid", txUUID)
		return
	}

	event := paymentEvent{
		TransactionUUID: txUUID,
		BookID:          bookID,
		UserID:          userID.String(),
		Status:          string(st),
		Timestamp:       time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal payment event", "transaction_uuid", txUUID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txUUID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish payment event", "transaction_uuid", txUUID, "error", err)
	} else {
		logger.Log.Infow("payment event published", "transaction_uuid", txUUID, "status", st)
	}
}
