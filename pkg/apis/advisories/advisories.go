// Package advisories binds bsa.aspx: service advisories, the number of
// trains in service and elevator outages.
package advisories

import (
	"context"
	"fmt"

	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/datetime"
	"github.com/travigo/bart/pkg/fields"
)

var (
	BSAEndpoint       = bart.Endpoint{Script: "bsa", Command: "bsa"}
	CountEndpoint     = bart.Endpoint{Script: "bsa", Command: "count"}
	ElevatorsEndpoint = bart.Endpoint{Script: "bsa", Command: "elev"}
)

type BSAType string

const (
	BSATypeDelay     BSAType = "DELAY"
	BSATypeEmergency BSAType = "EMERGENCY"
)

func (t *BSAType) UnmarshalText(text []byte) error {
	switch value := BSAType(text); value {
	case BSATypeDelay, BSATypeEmergency:
		*t = value
		return nil
	default:
		return fmt.Errorf("%w: %q does not match any BSA type", constants.ErrUnknownCode, text)
	}
}

type ElevatorType string

const ElevatorTypeElevator ElevatorType = "ELEVATOR"

func (t *ElevatorType) UnmarshalText(text []byte) error {
	if value := ElevatorType(text); value == ElevatorTypeElevator {
		*t = value
		return nil
	}

	return fmt.Errorf("%w: %q does not match any elevator advisory type", constants.ErrUnknownCode, text)
}

// Advisory is a single bsa element. The posted and expiry times are dropped
// when the API sends them blank or malformed.
type Advisory[T any] struct {
	ID          string                             `json:"@id,omitempty" groups:"basic"`
	Station     string                             `json:"station" groups:"basic"`
	Type        *T                                 `json:"type,omitempty" groups:"basic"`
	Description fields.CDATA                       `json:"description" groups:"basic"`
	SMSText     fields.CDATA                       `json:"sms_text"`
	Posted      fields.Optional[datetime.DateTime] `json:"posted"`
	Expires     fields.Optional[datetime.DateTime] `json:"expires"`
}

type ServiceAdvisory = Advisory[BSAType]

type ElevatorAdvisory = Advisory[ElevatorType]

type BSAResponse struct {
	Date     datetime.Date                `json:"date" groups:"basic"`
	Time     datetime.ZonedTime           `json:"time" groups:"basic"`
	Advisory fields.List[ServiceAdvisory] `json:"bsa" groups:"basic"`
	Message  bart.Message                 `json:"message"`
}

type CountResponse struct {
	Date       datetime.Date      `json:"date" groups:"basic"`
	Time       datetime.ZonedTime `json:"time" groups:"basic"`
	TrainCount fields.Int         `json:"traincount" groups:"basic"`
	Message    bart.Message       `json:"message"`
}

type ElevatorsResponse struct {
	Date     datetime.Date                 `json:"date" groups:"basic"`
	Time     datetime.ZonedTime            `json:"time" groups:"basic"`
	Advisory fields.List[ElevatorAdvisory] `json:"bsa" groups:"basic"`
	Message  bart.Message                  `json:"message"`
}

func BSAURL(c *bart.Client) string {
	return c.URL(BSAEndpoint, nil)
}

func CountURL(c *bart.Client) string {
	return c.URL(CountEndpoint, nil)
}

func ElevatorsURL(c *bart.Client) string {
	return c.URL(ElevatorsEndpoint, nil)
}

// BSA returns the current service advisories. With no delays the API still
// returns one advisory saying so.
func BSA(ctx context.Context, c *bart.Client) (*BSAResponse, error) {
	return bart.Fetch[BSAResponse](ctx, c, BSAEndpoint, nil)
}

func Count(ctx context.Context, c *bart.Client) (*CountResponse, error) {
	return bart.Fetch[CountResponse](ctx, c, CountEndpoint, nil)
}

func Elevators(ctx context.Context, c *bart.Client) (*ElevatorsResponse, error) {
	return bart.Fetch[ElevatorsResponse](ctx, c, ElevatorsEndpoint, nil)
}
