package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/simplebank/internal/config"
	"github.com/Dan9191/simplebank/internal/integrations/rates"
	"github.com/Dan9191/simplebank/internal/models"
	"github.com/Dan9191/simplebank/internal/repository"
	"github.com/Dan9191/simplebank/internal/service"
	"github.com/Dan9191/simplebank/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	_ = godotenv.Load()

	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the ledger from the last snapshot; a missing or corrupt
	// file starts an empty ledger.
	repo := repository.NewRepository(cfg.DataFile)
	if err := repo.Load(); err != nil {
		logger.Fatalf("Failed to load accounts: %v", err)
	}

	var notifier service.Notifier
	if cfg.SMTPHost != "" {
		notifier = email.NewSender(cfg, logger)
	}
	var rateSource service.RateSource
	if cfg.RateFeedURL != "" {
		rateSource = rates.NewClient(cfg, logger)
	}

	svc := service.NewService(repo, logger, cfg, notifier, rateSource)

	app := &consoleApp{
		svc:    svc,
		logger: logger,
		in:     bufio.NewReader(os.Stdin),
	}
	app.mainMenu()
}

// consoleApp drives the interactive menus. All business rules live in the
// service layer; the console only parses input and prints outcomes.
type consoleApp struct {
	svc    *service.Service
	logger *logrus.Logger
	in     *bufio.Reader
}

func (a *consoleApp) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *consoleApp) mainMenu() {
	for {
		fmt.Println("\nWelcome to SimpleBank")
		fmt.Println("1. Create Account")
		fmt.Println("2. Login")
		fmt.Println("3. Exit")

		switch a.readLine("Enter choice: ") {
		case "1":
			a.createAccount()
		case "2":
			a.login()
		case "3":
			if err := a.svc.Save(); err != nil {
				a.logger.Fatalf("Failed to save accounts: %v", err)
			}
			fmt.Println("Thank you for banking with us!")
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

func (a *consoleApp) createAccount() {
	name := a.readLine("Enter your name: ")
	pin := a.readLine("Create a 4-digit PIN: ")
	mobile := a.readLine("Enter your mobile number: ")
	emailAddr := a.readLine("Enter your email: ")

	account, err := a.svc.CreateAccount(name, pin, mobile, emailAddr)
	if err != nil {
		a.fail(err)
		return
	}
	fmt.Printf("Account created! Your account number is: %d\n", account.AccountNumber)
}

func (a *consoleApp) login() {
	number, err := strconv.ParseInt(a.readLine("Enter account number: "), 10, 64)
	if err != nil {
		fmt.Println("Invalid account number")
		return
	}
	pin := a.readLine("Enter PIN: ")

	session, err := a.svc.Authenticate(number, pin)
	if err != nil {
		fmt.Println("Invalid credentials")
		return
	}
	a.accountMenu(session)
}

func (a *consoleApp) accountMenu(session *models.Session) {
	for {
		fmt.Println("\nAccount Menu")
		fmt.Println("1. Check Balance")
		fmt.Println("2. Deposit")
		fmt.Println("3. Withdraw")
		fmt.Println("4. Transfer")
		fmt.Println("5. Transaction History")
		fmt.Println("6. Calculate Interest")
		fmt.Println("7. Logout")

		switch a.readLine("Enter choice: ") {
		case "1":
			balance, err := a.svc.Balance(session)
			if err != nil {
				a.fail(err)
				return
			}
			fmt.Printf("Your balance: ₹%s\n", balance.StringFixed(2))
		case "2":
			amount, err := decimal.NewFromString(a.readLine("Enter deposit amount: ₹"))
			if err != nil {
				fmt.Println("Invalid amount")
				continue
			}
			if err := a.svc.Deposit(session, amount); err != nil {
				a.fail(err)
				continue
			}
			fmt.Println("Deposit successful")
		case "3":
			amount, err := decimal.NewFromString(a.readLine("Enter withdrawal amount: ₹"))
			if err != nil {
				fmt.Println("Invalid amount")
				continue
			}
			if err := a.svc.Withdraw(session, amount); err != nil {
				a.fail(err)
				continue
			}
			fmt.Println("Withdrawal successful")
		case "4":
			recipient, err := strconv.ParseInt(a.readLine("Enter recipient account number: "), 10, 64)
			if err != nil {
				fmt.Println("Invalid account number")
				continue
			}
			amount, err := decimal.NewFromString(a.readLine("Enter transfer amount: ₹"))
			if err != nil {
				fmt.Println("Invalid amount")
				continue
			}
			if err := a.svc.Transfer(session, recipient, amount); err != nil {
				a.fail(err)
				continue
			}
			fmt.Println("Transfer successful")
		case "5":
			history, err := a.svc.History(session)
			if err != nil {
				a.fail(err)
				continue
			}
			fmt.Println("\nTransaction History:")
			for _, tx := range history {
				fmt.Printf("%s - %s: ₹%s\n", tx.Date, title(tx.Type), tx.Amount.StringFixed(2))
			}
			statement, err := a.svc.Statement(session)
			if err != nil {
				a.fail(err)
				continue
			}
			fmt.Printf("Total deposits: ₹%s, total withdrawals: ₹%s, net: ₹%s\n",
				statement.Deposits.StringFixed(2), statement.Withdrawals.StringFixed(2), statement.Net.StringFixed(2))
		case "6":
			interest, err := a.svc.ApplyInterest(session)
			if err != nil {
				a.fail(err)
				continue
			}
			fmt.Printf("Interest added: ₹%s\n", interest.StringFixed(2))
		case "7":
			a.svc.Logout(session)
			fmt.Println("Logged out successfully")
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// fail prints business-rule failures and treats anything else, in practice a
// failed ledger write, as fatal.
func (a *consoleApp) fail(err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPIN):
		fmt.Println("Invalid PIN. Must be 4 digits.")
	case errors.Is(err, service.ErrInvalidMobile):
		fmt.Println("Invalid mobile number. Must be 10 digits.")
	case errors.Is(err, service.ErrInsufficientFunds):
		fmt.Println("Insufficient funds")
	case errors.Is(err, service.ErrAccountNotFound):
		fmt.Println("Transfer failed")
	case errors.Is(err, service.ErrNoSession):
		fmt.Println("Please log in first")
	default:
		a.logger.Fatalf("Unrecoverable error: %v", err)
	}
}
