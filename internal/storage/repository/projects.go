package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/project-tracker/internal/models"
)

// CreateProject вставляет новый проект и возвращает запись с заполненными
// uid и отметками времени.
func (s *Storage) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	const op = "storage.CreateProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO projects (title, description, status, due_date, owner_uid)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid, created_at, updated_at`
	if err := s.DB.QueryRowContext(ctx, query,
		project.Title, project.Description, project.Status, project.DueDate,
		project.OwnerUID).Scan(&project.UID, &project.CreatedAt, &project.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &project, nil
}

// GetProject возвращает проект по его uid.
func (s *Storage) GetProject(ctx context.Context, projectUID string) (*models.Project, error) {
	const op = "storage.GetProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, title, description, status, due_date, owner_uid,
			      created_at, updated_at
			  FROM projects WHERE uid = $1`
	return scanProject(s.DB.QueryRowContext(ctx, query, projectUID), op)
}

// UpdateProject обновляет данные проекта по его uid и возвращает свежую запись.
func (s *Storage) UpdateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	const op = "storage.UpdateProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE projects
			  SET title = $1, description = $2, status = $3, due_date = $4, updated_at = now()
			  WHERE uid = $5
			  RETURNING uid, title, description, status, due_date, owner_uid,
			      created_at, updated_at`
	return scanProject(s.DB.QueryRowContext(ctx, query,
		project.Title, project.Description, project.Status, project.DueDate,
		project.UID), op)
}

// DeleteProject удаляет проект по uid и возвращает количество удалённых строк.
func (s *Storage) DeleteProject(ctx context.Context, projectUID string) (int, error) {
	const op = "storage.DeleteProject"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM projects WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, projectUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListProjects возвращает список проектов владельца с пагинацией,
// от недавно обновлённых к старым. Запрос всегда ограничен owner_uid:
// чужие проекты в выборку не попадают ни при каких параметрах.
func (s *Storage) ListProjects(ctx context.Context, ownerUID string, limit, offset int) ([]*models.Project, error) {
	const op = "storage.ListProjects"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, title, description, status, due_date, owner_uid,
			      created_at, updated_at
			  FROM projects
			  WHERE owner_uid = $1
			  ORDER BY updated_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Project
	for rows.Next() {
		var item models.Project
		var description sql.NullString
		var dueDate sql.NullTime
		if err := rows.Scan(&item.UID, &item.Title, &description, &item.Status,
			&dueDate, &item.OwnerUID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if description.Valid {
			item.Description = &description.String
		}
		if dueDate.Valid {
			item.DueDate = &dueDate.Time
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteProjectsByOwner удаляет все проекты владельца и возвращает
// количество удалённых строк. Используется при каскадном удалении аккаунта.
func (s *Storage) DeleteProjectsByOwner(ctx context.Context, ownerUID string) (int, error) {
	const op = "storage.DeleteProjectsByOwner"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM projects WHERE owner_uid = $1`
	result, err := s.DB.ExecContext(ctx, query, ownerUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func scanProject(row *sql.Row, op string) (*models.Project, error) {
	p := &models.Project{}
	var description sql.NullString
	var dueDate sql.NullTime
	if err := row.Scan(&p.UID, &p.Title, &description, &p.Status, &dueDate,
		&p.OwnerUID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if description.Valid {
		p.Description = &description.String
	}
	if dueDate.Valid {
		p.DueDate = &dueDate.Time
	}
	return p, nil
}
