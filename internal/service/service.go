package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/simplebank/internal/config"
	"github.com/Dan9191/simplebank/internal/models"
	"github.com/Dan9191/simplebank/internal/repository"
	"github.com/Dan9191/simplebank/internal/utils"
)

// Notifier delivers best-effort account notifications. Delivery failures
// never affect the outcome of the operation that triggered them.
type Notifier interface {
	SendAccountCreated(to, name string, accountNumber int64) error
	SendTransactionNotification(to, name string, accountNumber int64, transactionType string, amount, balance decimal.Decimal) error
}

// RateSource supplies the current savings interest rate.
type RateSource interface {
	GetInterestRate() (float64, error)
}

// Service handles business logic
type Service struct {
	repo     *repository.Repository
	log      *logrus.Logger
	config   *config.Config
	notifier Notifier
	rates    RateSource
	sessions map[string]int64
}

// NewService initializes a new service. notifier and rates may be nil.
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, notifier Notifier, rates RateSource) *Service {
	return &Service{
		repo:     repo,
		log:      log,
		config:   cfg,
		notifier: notifier,
		rates:    rates,
		sessions: make(map[string]int64),
	}
}

// CreateAccount validates the applicant details, generates a unique account
// number, persists the new account, and notifies the owner best-effort.
func (s *Service) CreateAccount(name, pin, mobile, email string) (*models.Account, error) {
	if !utils.ValidatePIN(pin) {
		return nil, ErrInvalidPIN
	}
	if !utils.ValidateMobile(mobile) {
		return nil, ErrInvalidMobile
	}

	number, err := utils.GenerateAccountNumber()
	if err != nil {
		return nil, err
	}
	for s.repo.Exists(number) {
		number, err = utils.GenerateAccountNumber()
		if err != nil {
			return nil, err
		}
	}

	credential := pin
	if s.config.HashPINs {
		hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		credential = string(hashed)
	}

	account := &models.Account{
		AccountNumber:      number,
		PIN:                credential,
		Name:               name,
		Mobile:             mobile,
		Email:              email,
		Balance:            decimal.Zero,
		TransactionHistory: []models.Transaction{},
	}
	s.repo.Put(account)
	if err := s.repo.Save(); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendAccountCreated(email, name, number); err != nil {
			s.log.Warnf("Account created notification failed for %d: %v", number, err)
		}
	}

	s.log.Infof("Account created: %d", number)
	return account, nil
}

// Authenticate verifies the claimed PIN against the stored credential and
// returns a new session on success. Stored bcrypt hashes are compared with
// bcrypt, anything else by exact equality.
func (s *Service) Authenticate(accountNumber int64, pin string) (*models.Session, error) {
	account, ok := s.repo.Get(accountNumber)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if strings.HasPrefix(account.PIN, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(account.PIN), []byte(pin)); err != nil {
			return nil, ErrInvalidCredentials
		}
	} else if account.PIN != pin {
		return nil, ErrInvalidCredentials
	}

	session := &models.Session{
		ID:            uuid.NewString(),
		AccountNumber: accountNumber,
		StartedAt:     time.Now(),
	}
	s.sessions[session.ID] = accountNumber

	s.log.Infof("Login: %d", accountNumber)
	return session, nil
}

// Logout revokes a session. Revoking an unknown session is a no-op.
func (s *Service) Logout(session *models.Session) {
	if session == nil {
		return
	}
	delete(s.sessions, session.ID)
	s.log.Infof("Logout: %d", session.AccountNumber)
}

// account resolves an active session to its account.
func (s *Service) account(session *models.Session) (*models.Account, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	number, ok := s.sessions[session.ID]
	if !ok || number != session.AccountNumber {
		return nil, ErrNoSession
	}
	account, ok := s.repo.Get(number)
	if !ok {
		return nil, ErrNoSession
	}
	return account, nil
}

// Deposit credits the session's account and persists the ledger.
// The amount is taken as given; the console rejects unparseable input.
func (s *Service) Deposit(session *models.Session, amount decimal.Decimal) error {
	account, err := s.account(session)
	if err != nil {
		return err
	}

	account.Deposit(amount)
	if err := s.repo.Save(); err != nil {
		return err
	}

	s.notifyTransaction(account, "Deposit", amount)
	s.log.Infof("Deposit of %s to %d", amount.String(), account.AccountNumber)
	return nil
}

// Withdraw debits the session's account when funds are sufficient and
// persists the ledger. Nothing changes on ErrInsufficientFunds.
func (s *Service) Withdraw(session *models.Session, amount decimal.Decimal) error {
	account, err := s.account(session)
	if err != nil {
		return err
	}

	if !account.Withdraw(amount) {
		return ErrInsufficientFunds
	}
	if err := s.repo.Save(); err != nil {
		return err
	}

	s.notifyTransaction(account, "Withdrawal", amount)
	s.log.Infof("Withdrawal of %s from %d", amount.String(), account.AccountNumber)
	return nil
}

// Transfer moves amount from the session's account to the recipient. The
// transfer is atomic: a failed withdrawal leaves both accounts untouched.
func (s *Service) Transfer(session *models.Session, recipientNumber int64, amount decimal.Decimal) error {
	account, err := s.account(session)
	if err != nil {
		return err
	}
	recipient, ok := s.repo.Get(recipientNumber)
	if !ok {
		return ErrAccountNotFound
	}

	if !account.Transfer(recipient, amount) {
		return ErrInsufficientFunds
	}
	if err := s.repo.Save(); err != nil {
		return err
	}

	s.log.Infof("Transfer of %s from %d to %d", amount.String(), account.AccountNumber, recipientNumber)
	return nil
}

// ApplyInterest accrues interest on the session's account at the feed rate,
// falling back to the configured default, and persists the ledger.
func (s *Service) ApplyInterest(session *models.Session) (decimal.Decimal, error) {
	account, err := s.account(session)
	if err != nil {
		return decimal.Zero, err
	}

	interest := account.CalculateInterest(s.interestRate())
	if err := s.repo.Save(); err != nil {
		return decimal.Zero, err
	}

	s.notifyTransaction(account, "Deposit", interest)
	s.log.Infof("Interest of %s added to %d", interest.String(), account.AccountNumber)
	return interest, nil
}

// Balance returns the session's account balance.
func (s *Service) Balance(session *models.Session) (decimal.Decimal, error) {
	account, err := s.account(session)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// History returns a copy of the session's account transaction history.
func (s *Service) History(session *models.Session) ([]models.Transaction, error) {
	account, err := s.account(session)
	if err != nil {
		return nil, err
	}
	return account.History(), nil
}

// Statement returns deposit and withdrawal totals for the session's account.
func (s *Service) Statement(session *models.Session) (models.Statement, error) {
	account, err := s.account(session)
	if err != nil {
		return models.Statement{}, err
	}
	return models.NewStatement(account.TransactionHistory), nil
}

// Save persists the full ledger. Called by the console on exit.
func (s *Service) Save() error {
	return s.repo.Save()
}

func (s *Service) interestRate() decimal.Decimal {
	if s.rates != nil {
		rate, err := s.rates.GetInterestRate()
		if err == nil {
			return decimal.NewFromFloat(rate)
		}
		s.log.Warnf("Rate feed unavailable, using default rate: %v", err)
	}
	return decimal.NewFromFloat(s.config.InterestRate)
}

func (s *Service) notifyTransaction(account *models.Account, transactionType string, amount decimal.Decimal) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.SendTransactionNotification(account.Email, account.Name, account.AccountNumber, transactionType, amount, account.Balance)
	if err != nil {
		s.log.Warnf("%s notification failed for %d: %v", transactionType, account.AccountNumber, err)
	}
}
