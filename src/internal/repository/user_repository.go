package repository

import (
	"context"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/pkg/databases/mysql"
)

type UserStore interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	CreateWithWallets(ctx context.Context, user *entity.User, types []entity.WalletType) (*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
}

type UserRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) *UserRepository {
	return &UserRepository{DB: db}
}

const selectUser = `
	SELECT id, username, email, password, full_name, phone, address, birth_date, created_at, updated_at
	FROM users
`

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := db.GetContext(ctx, &user, selectUser+` WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := db.GetContext(ctx, &user, selectUser+` WHERE username = ?`, username); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := selectUser + ` WHERE username = ? OR email = ? LIMIT 1`
	if err := db.GetContext(ctx, &user, query, username, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateWithWallets inserts the user row and one zero-balance wallet per type
// in a single transaction, so no account ever exists without its wallets.
func (r *UserRepository) CreateWithWallets(ctx context.Context, user *entity.User, types []entity.WalletType) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO users (username, email, password, full_name, created_at)
		VALUES (?, ?, ?, ?, NOW())`,
		user.Username, user.Email, user.Password, user.FullName,
	)
	if err != nil {
		return nil, err
	}

	userID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	for _, walletType := range types {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO wallets (user_id, wallet_type, balance, created_at)
			VALUES (?, ?, 0, NOW())`,
			userID, walletType,
		)
		if err != nil {
			return nil, err
		}
	}

	var created entity.User
	if err := tx.GetContext(ctx, &created, selectUser+` WHERE id = ?`, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE users
		SET full_name = ?, phone = ?, address = ?, birth_date = ?, updated_at = NOW()
		WHERE id = ?`,
		user.FullName, user.Phone, user.Address, user.BirthDate, user.ID,
	)
	return err
}
