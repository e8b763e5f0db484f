package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/ponyo877/pyxl/server/domain"
	"golang.org/x/sync/singleflight"
)

// Partition is the durable keyspace holding one room's pixel records.
type Partition struct {
	RoomID    string
	CreatedAt time.Time
}

// PixelRepository is the room-partitioned pixel store. Records keep the
// "{x}:{y}" -> "{color}:{authorId}" layout, one partition per room id.
type PixelRepository struct {
	db        *sql.DB
	opTimeout time.Duration

	opened sync.Map
	group  singleflight.Group
}

type PixelRepositoryOption func(*PixelRepository)

// WithOpTimeout bounds every store call that does not already carry a
// shorter deadline.
func WithOpTimeout(d time.Duration) PixelRepositoryOption {
	return func(r *PixelRepository) {
		r.opTimeout = d
	}
}

func NewPixelRepository(db *sql.DB, opts ...PixelRepositoryOption) *PixelRepository {
	r := &PixelRepository{db: db}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PixelRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

// Open returns the partition for roomID, creating it on first use.
// Concurrent first opens of the same room share one insert, which runs
// detached from any single caller's cancellation. A room missing from the
// registry has no partition.
func (r *PixelRepository) Open(ctx context.Context, roomID string) (Partition, error) {
	if v, ok := r.opened.Load(roomID); ok {
		return v.(Partition), nil
	}
	if err := ctx.Err(); err != nil {
		return Partition{}, domain.NewStorageError("open", roomID, err)
	}
	ch := r.group.DoChan(roomID, func() (any, error) {
		ctx, cancel := r.withTimeout(context.WithoutCancel(ctx))
		defer cancel()
		return r.createPartition(ctx, roomID)
	})
	select {
	case res := <-ch:
		if errors.Is(res.Err, domain.ErrRoomNotFound) {
			return Partition{}, res.Err
		}
		if res.Err != nil {
			return Partition{}, domain.NewStorageError("open", roomID, res.Err)
		}
		return res.Val.(Partition), nil
	case <-ctx.Done():
		return Partition{}, domain.NewStorageError("open", roomID, ctx.Err())
	}
}

func (r *PixelRepository) createPartition(ctx context.Context, roomID string) (Partition, error) {
	if _, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO partitions (room_id, created_at) VALUES (?, ?)",
		roomID, time.Now().UTC()); err != nil {
		if isForeignKeyViolation(err) {
			return Partition{}, fmt.Errorf("partition %s: %w", roomID, domain.ErrRoomNotFound)
		}
		return Partition{}, fmt.Errorf("failed to create partition: %w", err)
	}
	var p Partition
	if err := r.db.QueryRowContext(ctx,
		"SELECT room_id, created_at FROM partitions WHERE room_id = ?", roomID,
	).Scan(&p.RoomID, &p.CreatedAt); err != nil {
		return Partition{}, fmt.Errorf("failed to read partition: %w", err)
	}
	r.opened.Store(roomID, p)
	return p, nil
}

// Get looks up one coordinate. A missing record is reported as found=false,
// the background state.
func (r *PixelRepository) Get(ctx context.Context, roomID string, x, y int) (domain.Pixel, bool, error) {
	if _, err := r.Open(ctx, roomID); err != nil {
		return domain.Pixel{}, false, err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM pixels WHERE partition = ? AND key = ?",
		roomID, domain.EncodeKey(x, y),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Pixel{}, false, nil
	}
	if err != nil {
		return domain.Pixel{}, false, domain.NewStorageError("get", roomID, err)
	}
	color, author, err := domain.DecodeValue(value)
	if err != nil {
		return domain.Pixel{}, false, domain.NewStorageError("get", roomID, err)
	}
	return domain.NewPixel(x, y, color, author), true, nil
}

// Scan yields every stored pixel of the room in row-major order from a
// single query, so each call sees one consistent view. Iteration stops at
// the first error.
func (r *PixelRepository) Scan(ctx context.Context, roomID string) iter.Seq2[domain.Pixel, error] {
	return func(yield func(domain.Pixel, error) bool) {
		fail := func(err error) {
			yield(domain.Pixel{}, domain.NewStorageError("scan", roomID, err))
		}
		if _, err := r.Open(ctx, roomID); err != nil {
			yield(domain.Pixel{}, err)
			return
		}
		rows, err := r.db.QueryContext(ctx,
			"SELECT key, value FROM pixels WHERE partition = ? ORDER BY pixel_y(key), pixel_x(key)", roomID)
		if err != nil {
			fail(err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				fail(err)
				return
			}
			pixel, err := domain.DecodeRecord(key, value)
			if err != nil {
				fail(err)
				return
			}
			if !yield(pixel, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			fail(err)
		}
	}
}

// List collects Scan into a slice.
func (r *PixelRepository) List(ctx context.Context, roomID string) ([]domain.Pixel, error) {
	var pixels []domain.Pixel
	for pixel, err := range r.Scan(ctx, roomID) {
		if err != nil {
			return nil, err
		}
		pixels = append(pixels, pixel)
	}
	return pixels, nil
}

const upsertPixel = `
INSERT INTO pixels (partition, key, value) VALUES (?, ?, ?)
ON CONFLICT (partition, key) DO UPDATE SET value = excluded.value`

// Put upserts one coordinate. The write is committed, with fsync, before
// Put returns.
func (r *PixelRepository) Put(ctx context.Context, roomID string, x, y int, color domain.Color, authorID string) (domain.Pixel, error) {
	if _, err := r.Open(ctx, roomID); err != nil {
		return domain.Pixel{}, err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, upsertPixel,
		roomID, domain.EncodeKey(x, y), domain.EncodeValue(color, authorID)); err != nil {
		return domain.Pixel{}, domain.NewStorageError("put", roomID, err)
	}
	return domain.NewPixel(x, y, color, authorID), nil
}

// PutBatch upserts every pixel in one transaction; either all are stored or none.
func (r *PixelRepository) PutBatch(ctx context.Context, roomID string, pixels []domain.Pixel) ([]domain.Pixel, error) {
	if len(pixels) == 0 {
		return nil, nil
	}
	if _, err := r.Open(ctx, roomID); err != nil {
		return nil, err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.NewStorageError("put_batch", roomID, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertPixel)
	if err != nil {
		return nil, domain.NewStorageError("put_batch", roomID, err)
	}
	defer stmt.Close()

	for _, p := range pixels {
		if _, err := stmt.ExecContext(ctx, roomID, domain.EncodeKey(p.X, p.Y), domain.EncodeValue(p.Color, p.AuthorID)); err != nil {
			return nil, domain.NewStorageError("put_batch", roomID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, domain.NewStorageError("put_batch", roomID, err)
	}
	return append([]domain.Pixel(nil), pixels...), nil
}

func (r *PixelRepository) Count(ctx context.Context, roomID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pixels WHERE partition = ?", roomID).Scan(&n); err != nil {
		return 0, domain.NewStorageError("count", roomID, err)
	}
	return n, nil
}

// Drop destroys the room's partition and every record in it.
func (r *PixelRepository) Drop(ctx context.Context, roomID string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStorageError("drop", roomID, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pixels WHERE partition = ?", roomID); err != nil {
		return domain.NewStorageError("drop", roomID, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM partitions WHERE room_id = ?", roomID); err != nil {
		return domain.NewStorageError("drop", roomID, err)
	}
	if err := tx.Commit(); err != nil {
		return domain.NewStorageError("drop", roomID, err)
	}
	r.opened.Delete(roomID)
	return nil
}
