package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"carrental/config"
	"carrental/pkg/logger"
	"carrental/pkg/models"
	"carrental/service"
)

type State string

const (
	StateRunning State = "running"
	StateExited  State = "exited"
)

const (
	ChoiceAvailableCars = 1
	ChoiceRentCar       = 2
	ChoiceRentals       = 3
	ChoiceExit          = 4
)

// ErrInputFormat is returned by Run in strict mode when a number or date
// cannot be parsed.
var ErrInputFormat = errors.New("malformed input")

type Shell struct {
	Cfg   *config.Config
	Svc   service.IServiceManager
	Log   logger.ILogger
	in    *bufio.Scanner
	out   io.Writer
	state State
}

func New(cfg *config.Config, svc service.IServiceManager, log logger.ILogger, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		Cfg:   cfg,
		Svc:   svc,
		Log:   log,
		in:    bufio.NewScanner(in),
		out:   out,
		state: StateRunning,
	}
}

var messages = map[string]string{
	"menu":           "\n=== Car Rental System ===\n1. View Available Cars\n2. Rent a Car\n3. View Rental Records\n4. Exit\n",
	"menu_prompt":    "Enter your choice: ",
	"invalid_choice": "Invalid choice. Try again.",
	"goodbye":        "Thank you for using the Car Rental System!",

	"cars_header": "\nAvailable Cars:",
	"car_line":    "ID: %d | %s %s | Price/Day: %s%.2f",
	"no_cars":     "No cars available.",

	"car_prompt":     "\nEnter Car ID to rent: ",
	"name_prompt":    "Enter customer name: ",
	"contact_prompt": "Enter contact number: ",
	"start_prompt":   "Enter rental start date (YYYY-MM-DD): ",
	"end_prompt":     "Enter rental end date (YYYY-MM-DD): ",
	"bad_selection":  "Invalid car selection or car not available.",
	"bad_period":     "Invalid rental period. End date must be after start date.",
	"bad_number":     "Please enter a whole number.",
	"bad_date":       "Please enter a date as YYYY-MM-DD.",

	"rental_info": "\n== Rental Information ==\nCustomer ID: %d\nCustomer Name: %s\nCar: %s %s\nRental From: %s\nRental To: %s\nRental Days: %d\nTotal Price: %s%.2f\n",

	"rentals_header": "\nRental Records:",
	"rental_line":    "Customer: %s | Car: %s %s | From: %s | To: %s | Days: %d",
	"no_rentals":     "No rental records.",
}

func (s *Shell) State() State {
	return s.state
}

// Run loops over the menu until exit is chosen or input ends.
func (s *Shell) Run(ctx context.Context) error {
	s.Log.Info("shell started", logger.Bool("strict_input", s.Cfg.StrictInput))

	for s.state == StateRunning {
		fmt.Fprint(s.out, messages["menu"])

		choice, err := s.readInt(messages["menu_prompt"])
		if err != nil {
			return s.stop(err)
		}

		s.Log.Debug("menu choice", logger.Int64("choice", choice))

		switch choice {
		case ChoiceAvailableCars:
			err = s.handleAvailableCars(ctx)
		case ChoiceRentCar:
			err = s.handleRentCar(ctx)
		case ChoiceRentals:
			err = s.handleRentals(ctx)
		case ChoiceExit:
			s.println(messages["goodbye"])
			s.state = StateExited
		default:
			s.println(messages["invalid_choice"])
		}

		if err != nil {
			return s.stop(err)
		}
	}

	s.Log.Info("shell exited")
	return nil
}

// stop moves the shell to EXITED. End of input is a clean exit.
func (s *Shell) stop(err error) error {
	s.state = StateExited
	if errors.Is(err, io.EOF) {
		s.Log.Info("input closed, exiting")
		return nil
	}
	s.Log.Error("shell stopped", logger.Error(err))
	return err
}

func (s *Shell) handleAvailableCars(ctx context.Context) error {
	cars, err := s.Svc.Car().ListAvailable(ctx)
	if err != nil {
		return err
	}

	s.println(messages["cars_header"])
	if len(cars) == 0 {
		s.println(messages["no_cars"])
		return nil
	}
	for _, c := range cars {
		s.printf(messages["car_line"]+"\n", c.ID, c.Brand, c.Model, s.Cfg.CurrencySymbol, c.PricePerDay)
	}
	return nil
}

func (s *Shell) handleRentCar(ctx context.Context) error {
	if err := s.handleAvailableCars(ctx); err != nil {
		return err
	}

	carID, err := s.readInt(messages["car_prompt"])
	if err != nil {
		return err
	}

	// Reject a bad car before asking for customer details.
	car, err := s.Svc.Car().GetByID(ctx, carID)
	if err != nil || !car.Available {
		s.println(messages["bad_selection"])
		return nil
	}

	name, err := s.readLine(messages["name_prompt"])
	if err != nil {
		return err
	}
	contact, err := s.readLine(messages["contact_prompt"])
	if err != nil {
		return err
	}
	start, err := s.readDate(messages["start_prompt"])
	if err != nil {
		return err
	}
	end, err := s.readDate(messages["end_prompt"])
	if err != nil {
		return err
	}

	rental, err := s.Svc.Rental().CreateRental(ctx, car.ID, name, contact, start, end)
	switch {
	case errors.Is(err, service.ErrInvalidRentalPeriod):
		s.println(messages["bad_period"])
		return nil
	case isSelectionError(err):
		s.println(messages["bad_selection"])
		return nil
	case err != nil:
		return err
	}

	s.printf(messages["rental_info"],
		rental.Customer.ID,
		rental.Customer.Name,
		rental.Car.Brand, rental.Car.Model,
		models.FormatDate(rental.StartDate),
		models.FormatDate(rental.EndDate),
		rental.Days(),
		s.Cfg.CurrencySymbol, rental.TotalPrice(),
	)
	return nil
}

func (s *Shell) handleRentals(ctx context.Context) error {
	rentals, err := s.Svc.Rental().ListAll(ctx)
	if err != nil {
		return err
	}

	s.println(messages["rentals_header"])
	if len(rentals) == 0 {
		s.println(messages["no_rentals"])
		return nil
	}
	for _, r := range rentals {
		s.printf(messages["rental_line"]+"\n",
			r.Customer.Name,
			r.Car.Brand, r.Car.Model,
			models.FormatDate(r.StartDate),
			models.FormatDate(r.EndDate),
			r.Days(),
		)
	}
	return nil
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// readInt reprompts on malformed numbers unless StrictInput is set.
func (s *Shell) readInt(prompt string) (int64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			return n, nil
		}
		if s.Cfg.StrictInput {
			return 0, fmt.Errorf("%q is not a number: %w", line, ErrInputFormat)
		}
		s.Log.Debug("malformed number", logger.String("input", line))
		s.println(messages["bad_number"])
	}
}

func (s *Shell) readDate(prompt string) (time.Time, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return time.Time{}, err
		}
		d, err := models.ParseDate(strings.TrimSpace(line))
		if err == nil {
			return d, nil
		}
		if s.Cfg.StrictInput {
			return time.Time{}, fmt.Errorf("%q is not a date: %w", line, ErrInputFormat)
		}
		s.Log.Debug("malformed date", logger.String("input", line))
		s.println(messages["bad_date"])
	}
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
