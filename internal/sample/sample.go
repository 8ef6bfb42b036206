// Package sample provides services exposing tools, used by the toolcatalog command.
package sample

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/annotations"
	"github.com/effective-security/llmtools/container"
	"github.com/effective-security/llmtools/pkg/schema"
	"github.com/effective-security/llmtools/tools"
)

// registration errors of the package tools
var registrationErr error

func init() {
	registrationErr = Annotate(nil)
}

// Annotate registers the tools of the sample services in the store,
// a nil store means annotations.Default.
// Parameter names are explicit, the services do not depend on their source.
func Annotate(store *annotations.Store) error {
	return errors.Join(
		tools.For[*Weather](store).
			Tool("Current", "Returns the current weather in a city").
			Param(1, tools.WithName("city"), tools.WithDescription("City name")).
			Param(2,
				tools.WithName("units"),
				tools.WithType(schema.MustFromAny(map[string]any{
					"type": "string",
					"enum": []string{"metric", "imperial"},
				})),
				tools.WithDescription("Units of measure")).
			Tool("Forecast", "Returns the weather forecast for a city").
			Param(1, tools.WithName("city"), tools.WithDescription("City name")).
			Param(2, tools.WithName("days"), tools.WithDescription("Number of days")).
			Err(),
		tools.For[*Calculator](store).
			Tool("Add", "Adds two numbers").
			Param(0, tools.WithName("a")).
			Param(1, tools.WithName("b")).
			Tool("Divide", "Divides a by b").
			Param(0, tools.WithName("a"), tools.WithDescription("Dividend")).
			Param(1, tools.WithName("b"), tools.WithDescription("Divisor")).
			Tool("Evaluate", "Evaluates an expression").
			Param(0, tools.WithName("expr")).
			Err(),
		tools.For[*Mailer](store).
			Tool("Send", "Sends an email").
			Param(0, tools.WithName("to")).
			Param(1, tools.WithName("subject")).
			Param(2, tools.WithName("body")).
			Err(),
	)
}

// Register adds the sample services to the container
func Register(c *container.Container) error {
	if registrationErr != nil {
		return registrationErr
	}
	return errors.Join(
		c.Provide("weather", NewWeather()),
		c.Alias("forecast", "weather"),
		c.ProvideLazy("mailer", func(ctx context.Context, c *container.Container) (any, error) {
			return &Mailer{}, nil
		}),
		c.Controller("calculator", &Calculator{}),
	)
}

// Weather provides weather reports
type Weather struct {
	reports map[string]float64
}

// NewWeather returns Weather with predefined reports
func NewWeather() *Weather {
	return &Weather{
		reports: map[string]float64{
			"paris":  18.5,
			"london": 14,
			"tokyo":  22,
		},
	}
}

// Current returns the current weather
func (w *Weather) Current(ctx context.Context, city string, units string) (string, error) {
	celsius, ok := w.reports[strings.ToLower(city)]
	if !ok {
		return "", errors.Newf("no report for %s", city)
	}
	if units == "imperial" {
		return fmt.Sprintf("%s: %.1fF", city, celsius*9/5+32), nil
	}
	return fmt.Sprintf("%s: %.1fC", city, celsius), nil
}

// Forecast returns the forecast for the number of days
func (w *Weather) Forecast(ctx context.Context, city string, days int) ([]string, error) {
	celsius, ok := w.reports[strings.ToLower(city)]
	if !ok {
		return nil, errors.Newf("no report for %s", city)
	}
	list := make([]string, 0, days)
	for i := 0; i < days; i++ {
		list = append(list, fmt.Sprintf("%s: day %d: %.1fC", city, i+1, celsius+float64(i)))
	}
	return list, nil
}

// Expression is an arithmetic expression
type Expression struct {
	Op   string    `json:"op" jsonschema:"enum=add,enum=sub,enum=mul,enum=div"`
	Args []float64 `json:"args" jsonschema:"minItems=1"`
}

// Calculator does arithmetic
type Calculator struct{}

func (c *Calculator) Add(a, b float64) float64 {
	return a + b
}

func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func (c *Calculator) Evaluate(expr Expression) (float64, error) {
	if len(expr.Args) == 0 {
		return 0, errors.New("no arguments")
	}
	res := expr.Args[0]
	for _, arg := range expr.Args[1:] {
		switch expr.Op {
		case "add":
			res += arg
		case "sub":
			res -= arg
		case "mul":
			res *= arg
		case "div":
			if arg == 0 {
				return 0, errors.New("division by zero")
			}
			res /= arg
		default:
			return 0, errors.Newf("unsupported operation: %s", expr.Op)
		}
	}
	return res, nil
}

// Mailer sends emails, it is created on first use
type Mailer struct {
	Sent int
}

func (m *Mailer) Send(to, subject, body string) error {
	if to == "" {
		return errors.New("recipient is required")
	}
	m.Sent++
	return nil
}
