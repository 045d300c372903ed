package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/timer"
)

var (
	timersBucket   = []byte("timers")
	segmentsBucket = []byte("segments")

	currentKey = []byte("current")
	nextIDKey  = []byte("next_id")
)

const openTimeout = 1 * time.Second

// Segment is one finished work segment in the segment log. TaskID is zero
// when no task was active.
type Segment struct {
	Start   time.Time     `json:"start"`
	End     time.Time     `json:"end"`
	Session timer.Session `json:"session"`
	Elapsed time.Duration `json:"elapsed"`
	TaskID  uint64        `json:"task_id,omitempty"`
}

// Client is a BoltDB database client. Holding it open locks out other pomo
// processes.
type Client struct {
	*bolt.DB
}

// NewClient opens the database at dbPath and creates the buckets.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, openTimeout)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{timersBucket, segmentsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{db}, nil
}

// SaveSnapshot stores the paused timer.
func (c *Client) SaveSnapshot(s timer.Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errEncode.Fmt("timer snapshot").Wrap(err)
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(timersBucket).Put(currentKey, b)
	})
}

// Snapshot returns the stored timer, if any.
func (c *Client) Snapshot() (timer.Snapshot, bool, error) {
	var (
		s     timer.Snapshot
		found bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(timersBucket).Get(currentKey)
		if len(b) == 0 {
			return nil
		}

		found = true

		return json.Unmarshal(b, &s)
	})
	if err != nil {
		return timer.Snapshot{}, false, errDecode.Fmt("timer snapshot").Wrap(err)
	}

	return s, found, nil
}

// DeleteSnapshot removes the stored timer.
func (c *Client) DeleteSnapshot() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(timersBucket).Delete(currentKey)
	})
}

// NextTaskID returns the stored task id counter, or zero if none was saved.
func (c *Client) NextTaskID() (uint64, error) {
	var id uint64

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(timersBucket).Get(nextIDKey)
		if len(b) == 0 {
			return nil
		}

		var err error

		id, err = strconv.ParseUint(string(b), 10, 64)

		return err
	})
	if err != nil {
		return 0, errDecode.Fmt("task id counter").Wrap(err)
	}

	return id, nil
}

// SaveNextTaskID stores the id the next new task will get.
func (c *Client) SaveNextTaskID(id uint64) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(timersBucket).Put(
			nextIDKey,
			[]byte(strconv.FormatUint(id, 10)),
		)
	})
}

// AppendSegment adds seg to the segment log keyed by its start time.
func (c *Client) AppendSegment(seg Segment) error {
	b, err := json.Marshal(seg)
	if err != nil {
		return errEncode.Fmt("segment").Wrap(err)
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(segmentsBucket).Put(timeutil.ToKey(seg.Start), b)
	})
}

// Segments returns the logged segments that started within [start, end].
// A zero start means the beginning of the log.
func (c *Client) Segments(start, end time.Time) ([]Segment, error) {
	var out []Segment

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(segmentsBucket).Cursor()
		last := timeutil.ToKey(end)

		var k, v []byte
		if start.IsZero() {
			k, v = cur.First()
		} else {
			k, v = cur.Seek(timeutil.ToKey(start))
		}

		for ; k != nil && bytes.Compare(k, last) <= 0; k, v = cur.Next() {
			var seg Segment
			if err := json.Unmarshal(v, &seg); err != nil {
				return err
			}

			out = append(out, seg)
		}

		return nil
	})
	if err != nil {
		return nil, errDecode.Fmt("segment log").Wrap(err)
	}

	return out, nil
}

// IsRunning reports whether another process holds the database at dbPath.
func IsRunning(dbPath string) (bool, error) {
	if !osutil.Exists(dbPath) {
		return false, nil
	}

	db, err := openDB(dbPath, 100*time.Millisecond)
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, ErrRunning) {
		return true, nil
	}

	return false, err
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string, timeout time.Duration) (*bolt.DB, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, errOpenDB.Fmt(dbPath).Wrap(err)
	}

	db, err := bolt.Open(
		dbPath,
		osutil.FilePermission,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrRunning
		}

		return nil, errOpenDB.Fmt(dbPath).Wrap(err)
	}

	return db, nil
}
