// Package addrbook keeps named addresses in a badger database.
package addrbook

import (
	"strings"

	"github.com/dgraph-io/badger"
	"github.com/mkohlhaas/base58addr/wallet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned for labels that are not in the book.
var ErrNotFound = errors.New("label not found")

var labelPrefix = []byte("label/")

// Book maps labels to addresses. It is safe for concurrent use.
type Book struct {
	db  *badger.DB
	log *logrus.Entry
}

// Entry is one labelled address.
type Entry struct {
	Label   string
	Address wallet.Address
}

// Open opens or creates the book stored in dir. badger holds a directory
// lock while the book is open, so a second Open on dir fails until Close.
func Open(dir string) (*Book, error) {
	log := logrus.WithField("addrbook", dir)
	opts := badger.DefaultOptions(dir).WithLogger(log.WithField("component", "badger"))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening address book %s", dir)
	}
	log.Debug("address book opened")
	return &Book{db: db, log: log}, nil
}

func (b *Book) Close() error {
	b.log.Debug("closing address book")
	return b.db.Close()
}

func key(label string) []byte {
	return append(append([]byte{}, labelPrefix...), label...)
}

func checkLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("empty label")
	}
	return nil
}

// Put stores addr under label, replacing what was there.
func (b *Book) Put(label string, addr wallet.Address) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(label), addr.Layout())
	})
	if err != nil {
		return errors.Wrapf(err, "storing %q", label)
	}
	b.log.WithFields(logrus.Fields{"label": label, "address": addr}).Info("address stored")
	return nil
}

// Get returns the address stored under label.
func (b *Book) Get(label string) (wallet.Address, error) {
	var addr wallet.Address
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(label))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			addr, err = wallet.AddressFromLayout(val)
			return err
		})
	})
	if err != nil {
		return wallet.Address{}, errors.Wrapf(err, "reading %q", label)
	}
	return addr, nil
}

// Delete removes label from the book.
func (b *Book) Delete(label string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(label)); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(key(label))
	})
	if err != nil {
		return errors.Wrapf(err, "deleting %q", label)
	}
	b.log.WithField("label", label).Info("address deleted")
	return nil
}

// List returns every entry ordered by label.
func (b *Book) List() ([]Entry, error) {
	var entries []Entry
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(labelPrefix); it.ValidForPrefix(labelPrefix); it.Next() {
			item := it.Item()
			label := string(item.Key()[len(labelPrefix):])
			err := item.Value(func(val []byte) error {
				addr, err := wallet.AddressFromLayout(val)
				if err != nil {
					return errors.Wrapf(err, "entry %q", label)
				}
				entries = append(entries, Entry{Label: label, Address: addr})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing address book")
	}
	return entries, nil
}
