package usecase

import (
	"context"
	"database/sql"
	"time"

	"ticketing-service/src/internal/entity"
)

type stubUserStore struct {
	users       map[int64]*entity.User
	createErr   error
	lastCreated *entity.User
	lastTypes   []entity.WalletType
}

func (s *stubUserStore) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubUserStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubUserStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubUserStore) CreateWithWallets(ctx context.Context, user *entity.User, types []entity.WalletType) (*entity.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	user.ID = int64(len(s.users) + 1)
	user.CreatedAt = time.Now()
	if s.users == nil {
		s.users = map[int64]*entity.User{}
	}
	s.users[user.ID] = user
	s.lastCreated = user
	s.lastTypes = types
	return user, nil
}

func (s *stubUserStore) UpdateProfile(ctx context.Context, user *entity.User) error {
	return nil
}

type stubWalletStore struct {
	wallets     []entity.Wallet
	findCalls   int
	ensureCalls int
	lastEnsured []entity.WalletType
}

func (s *stubWalletStore) FindByUser(ctx context.Context, userID int64) ([]entity.Wallet, error) {
	var out []entity.Wallet
	for _, w := range s.wallets {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *stubWalletStore) FindByUserAndType(ctx context.Context, userID int64, walletType entity.WalletType) (*entity.Wallet, error) {
	s.findCalls++
	for i := range s.wallets {
		if s.wallets[i].UserID == userID && s.wallets[i].WalletType == walletType {
			return &s.wallets[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubWalletStore) EnsureWallets(ctx context.Context, userID int64, types []entity.WalletType) ([]entity.Wallet, error) {
	s.ensureCalls++
	s.lastEnsured = types
	for _, t := range types {
		found := false
		for _, w := range s.wallets {
			if w.UserID == userID && w.WalletType == t {
				found = true
				break
			}
		}
		if !found {
			s.wallets = append(s.wallets, entity.Wallet{
				ID:         int64(len(s.wallets) + 1),
				UserID:     userID,
				WalletType: t,
			})
		}
	}
	return s.FindByUser(ctx, userID)
}

type stubEventStore struct {
	events map[int64]*entity.EventDetail
}

func (s *stubEventStore) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	event.ID = int64(len(s.events) + 1)
	return event, nil
}

func (s *stubEventStore) FindAll(ctx context.Context) ([]entity.EventDetail, error) {
	var out []entity.EventDetail
	for _, e := range s.events {
		out = append(out, *e)
	}
	return out, nil
}

func (s *stubEventStore) FindByID(ctx context.Context, id int64) (*entity.EventDetail, error) {
	if e, ok := s.events[id]; ok {
		return e, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubEventStore) Update(ctx context.Context, event *entity.Event) error {
	return nil
}

// stubPurchaseStore plays back a canned receipt built from the plan it is
// handed, so tests can verify exactly what the usecase asked the store to do.
type stubPurchaseStore struct {
	purchaseErr  error
	topUpErr     error
	balanceAfter int64
	stockAfter   int
	calls        int
	lastPlan     *entity.PurchasePlan
	lastTopUp    *entity.TopUpPlan
}

func (s *stubPurchaseStore) ExecutePurchase(ctx context.Context, plan entity.PurchasePlan) (*entity.PurchaseReceipt, error) {
	s.calls++
	s.lastPlan = &plan
	if s.purchaseErr != nil {
		return nil, s.purchaseErr
	}

	now := time.Now()
	tickets := make([]entity.Ticket, 0, len(plan.TicketCodes))
	for i, code := range plan.TicketCodes {
		tickets = append(tickets, entity.Ticket{
			ID:           int64(i + 1),
			Code:         code,
			EventID:      plan.EventID,
			UserID:       plan.BuyerID,
			PurchaseDate: now,
			Price:        plan.UnitPrice,
			Status:       entity.TicketStatusActive,
			WalletType:   plan.WalletType,
		})
	}

	return &entity.PurchaseReceipt{
		BuyerWallet: entity.Wallet{
			ID:         plan.BuyerWalletID,
			UserID:     plan.BuyerID,
			WalletType: plan.WalletType,
			Balance:    s.balanceAfter,
		},
		Event: entity.Event{
			ID:             plan.EventID,
			TicketQuantity: s.stockAfter,
		},
		Tickets: tickets,
		DebitTransaction: entity.Transaction{
			ID:          1,
			WalletID:    plan.BuyerWalletID,
			Amount:      -plan.TotalAmount,
			Type:        entity.TransactionTypePayment,
			Status:      entity.TransactionStatusSuccess,
			Description: plan.DebitDescription,
			CreatedAt:   now,
		},
		CreditTransaction: entity.Transaction{
			ID:          2,
			WalletID:    plan.SellerWalletID,
			Amount:      plan.TotalAmount,
			Type:        entity.TransactionTypeTransfer,
			Status:      entity.TransactionStatusSuccess,
			Description: plan.CreditDescription,
			CreatedAt:   now,
		},
		BuyerNotification:  plan.BuyerNotification,
		SellerNotification: plan.SellerNotification,
	}, nil
}

func (s *stubPurchaseStore) ExecuteTopUp(ctx context.Context, plan entity.TopUpPlan) (*entity.TopUpReceipt, error) {
	s.calls++
	s.lastTopUp = &plan
	if s.topUpErr != nil {
		return nil, s.topUpErr
	}

	return &entity.TopUpReceipt{
		Wallet: entity.Wallet{
			ID:      plan.WalletID,
			Balance: s.balanceAfter,
		},
		Transaction: entity.Transaction{
			ID:          10,
			WalletID:    plan.WalletID,
			Amount:      plan.Amount,
			Type:        entity.TransactionTypeTopUp,
			Status:      entity.TransactionStatusSuccess,
			Description: plan.Description,
			CreatedAt:   time.Now(),
		},
		Notification: plan.Notification,
	}, nil
}

type stubTransactionStore struct {
	transactions map[int64][]entity.Transaction
	err          error
}

func (s *stubTransactionStore) FindByWallet(ctx context.Context, walletID int64, limit int) ([]entity.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.transactions[walletID]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubNotificationStore struct {
	notifications map[int64]*entity.Notification
}

func (s *stubNotificationStore) FindByUser(ctx context.Context, userID int64) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (s *stubNotificationStore) MarkRead(ctx context.Context, id, userID int64) (*entity.Notification, error) {
	n, ok := s.notifications[id]
	if !ok || n.UserID != userID {
		return nil, sql.ErrNoRows
	}
	n.IsRead = true
	return n, nil
}

type stubTicketStore struct {
	details          map[int64]*entity.TicketDetail
	markErr          error
	markedIDs        []int64
	lastNotification entity.Notification
}

func (s *stubTicketStore) FindByUser(ctx context.Context, userID int64) ([]entity.TicketDetail, error) {
	var out []entity.TicketDetail
	for _, d := range s.details {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *stubTicketStore) FindDetailByID(ctx context.Context, id int64) (*entity.TicketDetail, error) {
	if d, ok := s.details[id]; ok {
		return d, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubTicketStore) FindTrade(ctx context.Context, userID int64, side string) ([]entity.TicketDetail, error) {
	var out []entity.TicketDetail
	for _, d := range s.details {
		if side == "buy" && d.UserID == userID {
			out = append(out, *d)
		}
		if side == "sell" && d.EventOwnerID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *stubTicketStore) MarkSent(ctx context.Context, ticketID int64, notification entity.Notification) (*entity.Ticket, error) {
	if s.markErr != nil {
		return nil, s.markErr
	}
	s.markedIDs = append(s.markedIDs, ticketID)
	s.lastNotification = notification
	d := s.details[ticketID]
	now := time.Now()
	d.IsSent = true
	d.Status = entity.TicketStatusSent
	d.SentAt = &now
	return &d.Ticket, nil
}
