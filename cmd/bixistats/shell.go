package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"bixistats.concordia.ca/internal/app"
	"bixistats.concordia.ca/internal/logging"
	"bixistats.concordia.ca/internal/output"
	"bixistats.concordia.ca/internal/utils"
)

// errEndOfInput ends the session when stdin is closed mid-conversation.
var errEndOfInput = errors.New("end of input")

// request is one menu entry.
type request struct {
	option string
	label  string
	title  string
	handle func(*shell) error
}

var requests = []request{
	{"1", "Req.1", "List trips by station + mode", (*shell).tripsByStation},
	{"2", "Req.2", "List trips by month", (*shell).tripsByMonth},
	{"3", "Req.3", "List trips with duration > X minutes", (*shell).tripsByDuration},
	{"4", "Req.4", "List trips by start-time interval", (*shell).tripsByStartTime},
	{"5", "Req.5", "Top N arrondissements by departures", (*shell).topArrondissements},
	{"6", "Req.6", "Top K start stations in period", (*shell).topStations},
	{"7", "Req.7", "Rush hour of a month", (*shell).rushHour},
	{"8", "Req.8", "Compare two months", (*shell).compareMonths},
}

type shell struct {
	app     *app.Application
	input   *bufio.Scanner
	printer *output.Printer
}

func newShell(application *app.Application, in io.Reader) *shell {
	return &shell{
		app:     application,
		input:   bufio.NewScanner(in),
		printer: application.Printer,
	}
}

// run loads the data file (prompting for it when path is empty) and serves
// the menu until the user exits or input ends. A load failure ends the
// session with an error; a failed request only ends that request.
func (s *shell) run(path string) error {
	s.printer.Info("Welcome to the Bixi Data Viewer!")

	if path == "" {
		answer, err := s.ask("Please enter the path to the Bixi data file: ")
		if err != nil {
			return err
		}
		path = utils.SanitizeInput(answer)
	}

	if _, err := s.app.Manager.Load(path); err != nil {
		s.printer.Error("Error while loading file: %v", err)
		return err
	}

	s.printer.Success("\nData loaded successfully.")
	s.printer.Print("Total trips loaded: %d", s.app.Manager.TotalTrips())
	s.printer.Print("Unique stations loaded: %d", s.app.Manager.UniqueStations())

	for {
		s.printMenu()

		option, err := s.ask("Select an option: ")
		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}
		option = utils.SanitizeInput(option)

		if option == "0" {
			s.printer.Print("Goodbye.")
			return nil
		}

		req, ok := findRequest(option)
		if !ok {
			s.printer.Print("Invalid option. Try again.")
			s.printer.Print("")
			continue
		}

		if err := s.execute(req); errors.Is(err, errEndOfInput) {
			return nil
		}
		s.printer.Print("")
	}
}

func findRequest(option string) (request, bool) {
	for _, req := range requests {
		if req.option == option {
			return req, true
		}
	}
	return request{}, false
}

// execute runs one request and reports its wall-clock time. Parameter and
// query errors are printed and swallowed so the menu can continue.
func (s *shell) execute(req request) error {
	started := time.Now()
	err := req.handle(s)
	elapsed := time.Since(started)

	if err != nil && !errors.Is(err, errEndOfInput) {
		s.printer.Error("%s failed: %v", req.label, err)
		logging.LogError(s.app.Logger, "request failed", err, slog.String("request", req.label))
	}

	s.printer.Print("Execution time (%s): %.3f ms", req.label, float64(elapsed.Nanoseconds())/1e6)
	return err
}

func (s *shell) printMenu() {
	s.printer.Header("MENU")
	for _, req := range requests {
		s.printer.Print("%s) %s - %s", req.option, req.label, req.title)
	}
	s.printer.Print("0) Exit")
}

// ask prompts and returns the next input line as typed.
func (s *shell) ask(prompt string) (string, error) {
	s.printer.Prompt(prompt)
	if !s.input.Scan() {
		if err := s.input.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		s.printer.Print("")
		return "", errEndOfInput
	}
	return s.input.Text(), nil
}
