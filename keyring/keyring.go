// Package keyring is a thin in-memory cache that lets a long-lived process
// (a service or demo harness; cmd/cryptoctl does not use it) refer to a generated keypair by an opaque id
// instead of threading the keypair value through every call, since key
// generation is expensive (spec.md §5 calls safe-prime search "a
// high-variance function of L").
//
// Grounded on absfs-encryptfs's filename.go: a uuid.New()-keyed map behind
// a sync.RWMutex, the one real third-party dependency in the pack built
// around exactly this id-for-a-value idiom.
package keyring

import (
	"sync"

	"github.com/google/uuid"

	"github.com/StyleYuHui/Secure-communication-system/dlog"
	"github.com/StyleYuHui/Secure-communication-system/internal/crerr"
	"github.com/StyleYuHui/Secure-communication-system/rsacore"
)

// Ring caches generated keypairs by uuid. The zero value is not usable;
// construct with New.
type Ring struct {
	mu  sync.RWMutex
	rsa map[uuid.UUID]*rsacore.KeyPair
	dlg map[uuid.UUID]*dlog.KeyPair
}

// New returns an empty Ring.
func New() *Ring {
	return &Ring{
		rsa: make(map[uuid.UUID]*rsacore.KeyPair),
		dlg: make(map[uuid.UUID]*dlog.KeyPair),
	}
}

// PutRSA stores an integer-factoring keypair under a fresh id.
func (r *Ring) PutRSA(kp *rsacore.KeyPair) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rsa[id] = kp
	return id
}

// GetRSA looks up a previously stored integer-factoring keypair.
func (r *Ring) GetRSA(id uuid.UUID) (*rsacore.KeyPair, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kp, ok := r.rsa[id]
	if !ok {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "keyring.GetRSA", "no rsa keypair with id %s", id)
	}
	return kp, nil
}

// DeleteRSA removes a stored integer-factoring keypair, if present.
func (r *Ring) DeleteRSA(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rsa, id)
}

// PutDiscreteLog stores a discrete-log keypair under a fresh id.
func (r *Ring) PutDiscreteLog(kp *dlog.KeyPair) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dlg[id] = kp
	return id
}

// GetDiscreteLog looks up a previously stored discrete-log keypair.
func (r *Ring) GetDiscreteLog(id uuid.UUID) (*dlog.KeyPair, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kp, ok := r.dlg[id]
	if !ok {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "keyring.GetDiscreteLog", "no discrete-log keypair with id %s", id)
	}
	return kp, nil
}

// DeleteDiscreteLog removes a stored discrete-log keypair, if present.
func (r *Ring) DeleteDiscreteLog(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.dlg, id)
}
