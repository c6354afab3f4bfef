package resource

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAlreadyRegistered    = errors.New("resource already registered")
	ErrUnregisteredResource = errors.New("unregistered resource")
	ErrResourceInUse        = errors.New("unable to deregister resource in use")
	ErrResourceExhausted    = errors.New("resource lending capacity exhausted")
	ErrUnknownLease         = errors.New("unknown lease")
)

// Lease is the borrower's proof of an outstanding loan. The ID is unique
// per loan; returning the same lease twice fails with ErrUnknownLease.
type Lease struct {
	ID  uuid.UUID
	Key string
}

type pool struct {
	capacity    int
	outstanding map[uuid.UUID]struct{}
}

// Lender tracks named resources and bounds how many loans of each may be
// outstanding at once. It is a plain synchronous value, in line with the
// rest of this repository; callers needing cross-goroutine lending must
// serialize access themselves.
type Lender struct {
	logger *zap.Logger
	pools  map[string]*pool
}

// NewLender returns an empty Lender. A nil logger disables logging.
func NewLender(logger *zap.Logger) *Lender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lender{
		logger: logger,
		pools:  make(map[string]*pool),
	}
}

// Register makes key lendable with the given capacity (number of loans that
// may be outstanding simultaneously).
func (l *Lender) Register(key string, capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("resource: capacity must be positive, got %d", capacity)
	}
	if _, ok := l.pools[key]; ok {
		return fmt.Errorf("%w: key %s", ErrAlreadyRegistered, key)
	}
	l.pools[key] = &pool{
		capacity:    capacity,
		outstanding: make(map[uuid.UUID]struct{}),
	}
	l.logger.Debug("resource registered",
		zap.String("key", key),
		zap.Int("capacity", capacity),
	)
	return nil
}

// Deregister removes key. It fails while any loan is outstanding.
func (l *Lender) Deregister(key string) error {
	p, ok := l.pools[key]
	if !ok {
		return fmt.Errorf("%w: key %s", ErrUnregisteredResource, key)
	}
	if len(p.outstanding) != 0 {
		return fmt.Errorf("%w: key %s, outstanding %d", ErrResourceInUse, key, len(p.outstanding))
	}
	delete(l.pools, key)
	l.logger.Debug("resource deregistered", zap.String("key", key))
	return nil
}

// Lend borrows one unit of key, returning the lease that must be given back
// via Return.
func (l *Lender) Lend(key string) (Lease, error) {
	p, ok := l.pools[key]
	if !ok {
		return Lease{}, fmt.Errorf("%w: key %s", ErrUnregisteredResource, key)
	}
	if len(p.outstanding) >= p.capacity {
		return Lease{}, fmt.Errorf("%w: key %s, capacity %d", ErrResourceExhausted, key, p.capacity)
	}
	lease := Lease{ID: uuid.New(), Key: key}
	p.outstanding[lease.ID] = struct{}{}
	l.logger.Debug("resource lent",
		zap.String("key", key),
		zap.String("lease", lease.ID.String()),
	)
	return lease, nil
}

// Return gives a loan back.
func (l *Lender) Return(lease Lease) error {
	p, ok := l.pools[lease.Key]
	if !ok {
		return fmt.Errorf("%w: key %s", ErrUnregisteredResource, lease.Key)
	}
	if _, ok := p.outstanding[lease.ID]; !ok {
		return fmt.Errorf("%w: lease %s", ErrUnknownLease, lease.ID)
	}
	delete(p.outstanding, lease.ID)
	l.logger.Debug("resource returned",
		zap.String("key", lease.Key),
		zap.String("lease", lease.ID.String()),
	)
	return nil
}

// WithLoan lends key for the duration of use and returns it on every exit
// path, panics included.
func (l *Lender) WithLoan(key string, use func(Lease) error) error {
	lease, err := l.Lend(key)
	if err != nil {
		return err
	}
	defer func() {
		if returnErr := l.Return(lease); returnErr != nil {
			l.logger.Warn("failed to return lease",
				zap.String("key", key),
				zap.Error(returnErr),
			)
		}
	}()
	return use(lease)
}

// Outstanding reports the number of loans currently out for key.
func (l *Lender) Outstanding(key string) (int, error) {
	p, ok := l.pools[key]
	if !ok {
		return 0, fmt.Errorf("%w: key %s", ErrUnregisteredResource, key)
	}
	return len(p.outstanding), nil
}
