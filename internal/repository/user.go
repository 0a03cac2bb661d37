package repository

import (
	"context"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const userSelect = `
	SELECT au.id, au.username, au.password, au.first_name, au.last_name,
	       au.nickname, au.email, ur.name AS role_name
	FROM app_user au
	JOIN user_roles ur ON au.role_id = ur.id`

type UserRepository struct {
	base
}

func NewUserRepository(db DBTX, logger *zerolog.Logger) *UserRepository {
	return &UserRepository{base{db: db, logger: logger}}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.FirstName,
		&user.LastName,
		&user.Nickname,
		&user.Email,
		&user.Role,
	)
	return user, err
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, userSelect+` ORDER BY au.id`)
	if err != nil {
		return nil, r.fail("user.get_all", err)
	}

	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, r.fail("user.get_all", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.Optional[model.User], error) {
	user, err := one(scanUser(r.db.QueryRow(ctx, userSelect+` WHERE au.id = $1`, id)))
	if err != nil {
		return user, r.fail("user.get_by_id", err)
	}
	return user, nil
}

// GetByUniqueKey looks a user up by one of the unique columns. The column
// name comes from the closed key set, never from the caller.
func (r *UserRepository) GetByUniqueKey(ctx context.Context, key model.UserLookupKey, value string) (model.Optional[model.User], error) {
	column, ok := key.Column()
	if !ok {
		return model.NotFound[model.User](), errs.NewBadRequestError("Unsupported lookup key.")
	}

	user, err := one(scanUser(r.db.QueryRow(ctx, userSelect+` WHERE au.`+column+` = $1`, value)))
	if err != nil {
		return user, r.fail("user.get_by_unique_key", err)
	}
	return user, nil
}

// GetByCredentials matches username and the stored plain-text password.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (model.Optional[model.User], error) {
	user, err := one(scanUser(r.db.QueryRow(ctx,
		userSelect+` WHERE au.username = $1 AND au.password = $2`, username, password)))
	if err != nil {
		return user, r.fail("user.get_by_credentials", err)
	}
	return user, nil
}

// Save inserts the user with the role named by user.Role and returns it with
// the generated id.
func (r *UserRepository) Save(ctx context.Context, user model.User) (model.User, error) {
	const query = `
		INSERT INTO app_user (username, password, first_name, last_name, nickname, email, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, (SELECT id FROM user_roles WHERE name = $7))
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Nickname,
		user.Email,
		user.Role,
	).Scan(&user.ID)
	if err != nil {
		return model.User{}, r.fail("user.save", err)
	}

	return user, nil
}

// Update overwrites the profile columns of the user. The role is not
// changed through this path.
func (r *UserRepository) Update(ctx context.Context, user model.User) (bool, error) {
	const query = `
		UPDATE app_user
		SET username = $2, password = $3, first_name = $4, last_name = $5, nickname = $6, email = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Nickname,
		user.Email,
	)
	if err != nil {
		return false, r.fail("user.update", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM app_user WHERE id = $1`, id)
	if err != nil {
		return false, r.fail("user.delete", err)
	}
	return tag.RowsAffected() > 0, nil
}
