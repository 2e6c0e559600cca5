// Package gtfsrt converts departure estimates into a GTFS-Realtime
// TripUpdates feed.
package gtfsrt

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/travigo/bart/pkg/apis/etd"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/output"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

const (
	FormatBinary = "gtfsrt"
	FormatText   = "gtfsrt-text"

	Version = "2.0"
)

var ErrUnsupported = errors.New("value can't be converted to GTFS-Realtime")

// FromETD builds a full dataset with one trip update per estimate. BART
// doesn't expose trip ids, so entities are keyed by origin, destination and
// position in the estimate list.
func FromETD(response *etd.Response, now time.Time) *gtfs.FeedMessage {
	var entities []*gtfs.FeedEntity

	for _, station := range response.Station {
		stopID := strings.ToUpper(station.Abbr.Abbr())

		for _, departure := range station.ETD {
			for i, estimate := range departure.Estimate {
				id := fmt.Sprintf("%s-%s-%d", stopID, strings.ToUpper(departure.Abbreviation.Abbr()), i)

				entities = append(entities, &gtfs.FeedEntity{
					Id:         proto.String(id),
					TripUpdate: tripUpdate(id, stopID, estimate, now),
				})
			}
		}
	}

	return &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String(Version),
			Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
		Entity: entities,
	}
}

func tripUpdate(id string, stopID string, estimate etd.Estimate, now time.Time) *gtfs.TripUpdate {
	trip := &gtfs.TripDescriptor{
		TripId:      proto.String(id),
		DirectionId: proto.Uint32(directionID(estimate.Direction)),
	}

	if estimate.CancelFlag {
		trip.ScheduleRelationship = gtfs.TripDescriptor_CANCELED.Enum()

		return &gtfs.TripUpdate{
			Trip:      trip,
			Timestamp: proto.Uint64(uint64(now.Unix())),
		}
	}

	arrival := now.Add(time.Duration(estimate.Minutes) * time.Minute)

	return &gtfs.TripUpdate{
		Trip:      trip,
		Timestamp: proto.Uint64(uint64(now.Unix())),
		Delay:     proto.Int32(int32(estimate.DelaySeconds())),
		StopTimeUpdate: []*gtfs.TripUpdate_StopTimeUpdate{
			{
				StopId: proto.String(stopID),
				Arrival: &gtfs.TripUpdate_StopTimeEvent{
					Time:  proto.Int64(arrival.Unix()),
					Delay: proto.Int32(int32(estimate.DelaySeconds())),
				},
			},
		},
	}
}

func directionID(direction constants.Direction) uint32 {
	if direction == constants.DirectionSouthbound {
		return 1
	}

	return 0
}

func Marshal(feed *gtfs.FeedMessage, humanReadable bool) ([]byte, error) {
	var data []byte
	var err error

	if humanReadable {
		data, err = prototext.MarshalOptions{Multiline: true}.Marshal(feed)
	} else {
		data, err = proto.Marshal(feed)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal to protobuf: %w", err)
	}

	return data, nil
}

// Encoder returns an output encoder for ETD responses, stamped with the
// current time.
func Encoder(humanReadable bool) output.Encoder {
	return func(w io.Writer, value any) error {
		response, ok := value.(*etd.Response)
		if !ok {
			return fmt.Errorf("%w: %T", ErrUnsupported, value)
		}

		data, err := Marshal(FromETD(response, time.Now()), humanReadable)
		if err != nil {
			return err
		}

		_, err = w.Write(data)
		return err
	}
}

// Register adds the gtfsrt and gtfsrt-text output formats.
func Register() {
	output.RegisterFormat(FormatBinary, Encoder(false))
	output.RegisterFormat(FormatText, Encoder(true))
}
