package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ponyo877/pyxl/server/domain"
)

// RoomRepository is the SQLite-backed room registry.
type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) CreateRoom(ctx context.Context, room domain.Room) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := "INSERT INTO rooms (id, name, width, height, created_at) VALUES (?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, query, room.ID, room.Name, room.Width, room.Height, room.CreatedAt.UTC()); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("room '%s': %w", room.Name, domain.ErrRoomExists)
		}
		return fmt.Errorf("failed to insert room '%s': %w", room.Name, err)
	}
	for i, color := range room.Palette {
		query := "INSERT INTO room_colors (room_id, position, value) VALUES (?, ?, ?)"
		if _, err := tx.ExecContext(ctx, query, room.ID, i, string(color)); err != nil {
			return fmt.Errorf("failed to insert color %s for room '%s': %w", color, room.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit room '%s': %w", room.Name, err)
	}
	return nil
}

func (r *RoomRepository) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	query := "SELECT id, name, width, height, created_at FROM rooms WHERE id = ?"
	return r.getRoom(ctx, query, id)
}

func (r *RoomRepository) GetRoomByName(ctx context.Context, name string) (domain.Room, error) {
	query := "SELECT id, name, width, height, created_at FROM rooms WHERE name = ?"
	return r.getRoom(ctx, query, name)
}

func (r *RoomRepository) getRoom(ctx context.Context, query string, arg string) (domain.Room, error) {
	var room domain.Room
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&room.ID, &room.Name, &room.Width, &room.Height, &room.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Room{}, fmt.Errorf("room %s: %w", arg, domain.ErrRoomNotFound)
		}
		return domain.Room{}, fmt.Errorf("error querying room %s: %w", arg, err)
	}
	palette, err := r.palette(ctx, room.ID)
	if err != nil {
		return domain.Room{}, err
	}
	room.Palette = palette
	return room, nil
}

func (r *RoomRepository) palette(ctx context.Context, roomID string) (domain.Palette, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT value FROM room_colors WHERE room_id = ? ORDER BY position", roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query palette for room %s: %w", roomID, err)
	}
	defer rows.Close()

	var palette domain.Palette
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan palette color: %w", err)
		}
		palette = append(palette, domain.Color(value))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over palette for room %s: %w", roomID, err)
	}
	return palette, nil
}

// ListRooms returns every room, newest first.
func (r *RoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, width, height, created_at FROM rooms ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Width, &room.Height, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room info: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rooms: %w", err)
	}
	rows.Close()

	for i := range rooms {
		palette, err := r.palette(ctx, rooms[i].ID)
		if err != nil {
			return nil, err
		}
		rooms[i].Palette = palette
	}
	return rooms, nil
}

func (r *RoomRepository) DeleteRoom(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete room %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete room %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("room %s: %w", id, domain.ErrRoomNotFound)
	}
	return nil
}
