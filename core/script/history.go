package script

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var ErrNoHistory = errors.New("no recorded report")

// History keeps the reports of past runs in a bolt file, one bucket per
// script name, keyed by a per-bucket sequence number.
type History struct {
	db *bbolt.DB
}

func OpenHistory(path string) (*History, error) {
	opt := *bbolt.DefaultOptions
	opt.Timeout = 5 * time.Second

	db, err := bbolt.Open(path, 0o666, &opt)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// Record appends r under name and returns its sequence number.
func (h *History) Record(name string, r *Report) (uint64, error) {
	raw, err := encodeReport(r)
	if err != nil {
		return 0, err
	}

	var seq uint64
	err = h.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return err
		}
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(binary.BigEndian.AppendUint64(nil, seq), raw)
	})
	if err != nil {
		return 0, fmt.Errorf("record report(%s): %w", name, err)
	}
	return seq, nil
}

// Latest returns the newest report recorded under name with its sequence
// number.
func (h *History) Latest(name string) (*Report, uint64, error) {
	var (
		raw []byte
		seq uint64
	)
	err := h.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return ErrNoHistory
		}
		k, v := b.Cursor().Last()
		if k == nil {
			return ErrNoHistory
		}
		seq = binary.BigEndian.Uint64(k)
		raw = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("latest report(%s): %w", name, err)
	}

	r, err := decodeReport(raw)
	if err != nil {
		return nil, 0, err
	}
	return r, seq, nil
}

// Count returns how many reports are recorded under name.
func (h *History) Count(name string) (int, error) {
	n := 0
	err := h.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket([]byte(name)); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}

func encodeReport(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)

	enc.Reset(&buf)
	enc.SetCustomStructTag("json")
	enc.SetSortMapKeys(true)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeReport(raw []byte) (*Report, error) {
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)

	dec.Reset(bytes.NewReader(raw))
	dec.SetCustomStructTag("json")
	r := &Report{}
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	for i := range r.Steps {
		r.Steps[i].Result = normalize(r.Steps[i].Result)
	}
	for i := range r.Contents {
		r.Contents[i].Key = normalize(r.Contents[i].Key)
		r.Contents[i].Value = normalize(r.Contents[i].Value)
	}
	return r, nil
}
