package advisories

import (
	"github.com/jinzhu/copier"
)

type AdvisoryRow struct {
	ID          string `csv:"id"`
	Station     string `csv:"station"`
	Kind        string `csv:"type"`
	Description string `csv:"description"`
	PostedAt    string `csv:"posted"`
	ExpiresAt   string `csv:"expires"`
}

func advisoryRows[T ~string](advisories []Advisory[T]) ([]AdvisoryRow, error) {
	var rows []AdvisoryRow
	if err := copier.Copy(&rows, &advisories); err != nil {
		return nil, err
	}

	for i, advisory := range advisories {
		if advisory.Type != nil {
			rows[i].Kind = string(*advisory.Type)
		}
		if posted, ok := advisory.Posted.Get(); ok {
			rows[i].PostedAt = posted.String()
		}
		if expires, ok := advisory.Expires.Get(); ok {
			rows[i].ExpiresAt = expires.String()
		}
	}

	return rows, nil
}

func (r *BSAResponse) Rows() (any, error) {
	return advisoryRows(r.Advisory)
}

func (r *ElevatorsResponse) Rows() (any, error) {
	return advisoryRows(r.Advisory)
}

type CountRow struct {
	Date       string `csv:"date"`
	Time       string `csv:"time"`
	TrainCount int    `csv:"train_count"`
}

func (r *CountResponse) Rows() (any, error) {
	return []CountRow{{
		Date:       r.Date.String(),
		Time:       r.Time.String(),
		TrainCount: int(r.TrainCount),
	}}, nil
}
