package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// CreateAd вставляет новое объявление и возвращает его UID.
// Статус задается вызывающей стороной и для новых объявлений всегда pending.
func (s *Storage) CreateAd(ctx context.Context, ad models.Ad) (string, error) {
	const op = "storage.CreateAd"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO ads (user_uid, title, description, city, country, price,
			      category, subcategory, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING uid`
	var newUID string
	err := s.DB.QueryRowContext(ctx, query,
		ad.UserUID, ad.Title, ad.Description, ad.City, ad.Country, ad.Price,
		ad.Category, ad.Subcategory, ad.Status).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ReadAd возвращает объявление по его UID.
func (s *Storage) ReadAd(ctx context.Context, uid string) (*models.Ad, error) {
	const op = "storage.ReadAd"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, title, description, city, country, price,
			      category, subcategory, status, rejection_reason, moderator_comment,
			      created_at, moderated_at, updated_at
			  FROM ads WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, uid)

	var result models.Ad
	var rejectionReason, moderatorComment sql.NullString
	var moderatedAt, updatedAt sql.NullTime
	if err := row.Scan(&result.UID, &result.UserUID, &result.Title, &result.Description,
		&result.City, &result.Country, &result.Price, &result.Category, &result.Subcategory,
		&result.Status, &rejectionReason, &moderatorComment,
		&result.CreatedAt, &moderatedAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if rejectionReason.Valid {
		result.RejectionReason = &rejectionReason.String
	}
	if moderatorComment.Valid {
		result.ModeratorComment = &moderatorComment.String
	}
	if moderatedAt.Valid {
		result.ModeratedAt = &moderatedAt.Time
	}
	if updatedAt.Valid {
		result.UpdatedAt = &updatedAt.Time
	}
	return &result, nil
}

// UpdateAdContent обновляет контентные поля объявления, возвращает количество
// изменённых строк. Любое редактирование владельцем сбрасывает статус в pending
// и проставляет updated_at.
func (s *Storage) UpdateAdContent(ctx context.Context, req models.Ad, uid string) (int, error) {
	const op = "storage.UpdateAdContent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE ads
			  SET title = $1, description = $2, city = $3, country = $4, price = $5,
			      category = $6, subcategory = $7, status = $8, updated_at = now()
			  WHERE uid = $9`
	result, err := s.DB.ExecContext(ctx, query,
		req.Title, req.Description, req.City, req.Country, req.Price,
		req.Category, req.Subcategory, models.StatusPending, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ModerateAd записывает решение модератора: новый статус, причину отклонения
// и комментарий, а также проставляет moderated_at. Последняя запись побеждает,
// проверки версий нет.
func (s *Storage) ModerateAd(ctx context.Context, uid, status string, rejectionReason, comment *string) (int, error) {
	const op = "storage.ModerateAd"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE ads
			  SET status = $1,
			      rejection_reason = COALESCE($2, rejection_reason),
			      moderator_comment = COALESCE($3, moderator_comment),
			      moderated_at = now()
			  WHERE uid = $4`
	result, err := s.DB.ExecContext(ctx, query, status, rejectionReason, comment, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveAd удаляет объявление по UID и возвращает количество удалённых строк.
func (s *Storage) RemoveAd(ctx context.Context, uid string) (int, error) {
	const op = "storage.RemoveAd"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM ads WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListAdsByStatus возвращает объявления с заданным статусом.
// Лента одобренных сортируется от новых к старым, очередь модерации — от старых к новым.
func (s *Storage) ListAdsByStatus(ctx context.Context, status string, oldestFirst bool) ([]*models.Ad, error) {
	const op = "storage.ListAdsByStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	order := "DESC"
	if oldestFirst {
		order = "ASC"
	}
	query := `SELECT uid, user_uid, title, description, city, country, price,
			      category, subcategory, status, rejection_reason, moderator_comment,
			      created_at, moderated_at, updated_at
			  FROM ads
			  WHERE status = $1
			  ORDER BY created_at ` + order
	rows, err := s.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := collectAds(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAdsByUser возвращает все объявления пользователя от новых к старым,
// независимо от статуса.
func (s *Storage) ListAdsByUser(ctx context.Context, userUID string) ([]*models.Ad, error) {
	const op = "storage.ListAdsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, title, description, city, country, price,
			      category, subcategory, status, rejection_reason, moderator_comment,
			      created_at, moderated_at, updated_at
			  FROM ads
			  WHERE user_uid = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := collectAds(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func collectAds(rows *sql.Rows) ([]*models.Ad, error) {
	var result []*models.Ad
	for rows.Next() {
		var item models.Ad
		var rejectionReason, moderatorComment sql.NullString
		var moderatedAt, updatedAt sql.NullTime
		if err := rows.Scan(&item.UID, &item.UserUID, &item.Title, &item.Description,
			&item.City, &item.Country, &item.Price, &item.Category, &item.Subcategory,
			&item.Status, &rejectionReason, &moderatorComment,
			&item.CreatedAt, &moderatedAt, &updatedAt); err != nil {
			return nil, err
		}
		if rejectionReason.Valid {
			item.RejectionReason = &rejectionReason.String
		}
		if moderatorComment.Valid {
			item.ModeratorComment = &moderatorComment.String
		}
		if moderatedAt.Valid {
			item.ModeratedAt = &moderatedAt.Time
		}
		if updatedAt.Valid {
			item.UpdatedAt = &updatedAt.Time
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
