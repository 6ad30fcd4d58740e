package seed

import (
	"time"

	"github.com/orbitwatch/debris-tracker/internal/catalog"
)

func debrisFixtures() []catalog.CreateInput {
	entries := []struct {
		catalogID string
		source    string
		epoch     string
		tleLine1  string
		tleLine2  string
		lat       float64
		lon       float64
		alt       float64
		riskScore float64
		onChainTx string
	}{
		{
			"25544", "NORAD", "2024-01-15T12:00:00Z",
			"1 25544U 98067A   24015.50000000  .00000000  00000-0  00000+0 0  9990",
			"2 25544  51.6400 123.4567 0001234   0.0000   0.0000 15.12345678901234",
			51.6400, 123.4567, 400.5, 8.5,
			"0xabc123def456789012345678901234567890123456789012345678901234567890",
		},
		{
			"25545", "NORAD", "2024-01-15T12:30:00Z",
			"1 25545U 98067B   24015.52000000  .00000000  00000-0  00000+0 0  9991",
			"2 25545  52.1000 124.5678 0002345   0.0000   0.0000 15.23456789012345",
			52.1000, 124.5678, 350.2, 6.2,
			"0xdef456abc789012345678901234567890123456789012345678901234567890123",
		},
		{
			"25546", "ESA", "2024-01-15T13:00:00Z",
			"1 25546U 98067C   24015.54000000  .00000000  00000-0  00000+0 0  9992",
			"2 25546  53.2000 125.6789 0003456   0.0000   0.0000 15.34567890123456",
			53.2000, 125.6789, 500.8, 4.1,
			"0xghi789jkl012345678901234567890123456789012345678901234567890123456",
		},
		{
			"25547", "JAXA", "2024-01-15T13:30:00Z",
			"1 25547U 98067D   24015.56000000  .00000000  00000-0  00000+0 0  9993",
			"2 25547  54.3000 126.7890 0004567   0.0000   0.0000 15.45678901234567",
			54.3000, 126.7890, 600.3, 9.8,
			"0xjkl012mno345678901234567890123456789012345678901234567890123456789",
		},
		{
			"25548", "CNSA", "2024-01-15T14:00:00Z",
			"1 25548U 98067E   24015.58000000  .00000000  00000-0  00000+0 0  9994",
			"2 25548  55.4000 127.8901 0005678   0.0000   0.0000 15.56789012345678",
			55.4000, 127.8901, 450.7, 7.3,
			"0xmno345pqr678901234567890123456789012345678901234567890123456789012",
		},
		{
			"25549", "ISRO", "2024-01-15T14:30:00Z",
			"1 25549U 98067F   24015.60000000  .00000000  00000-0  00000+0 0  9995",
			"2 25549  56.5000 128.9012 0006789   0.0000   0.0000 15.67890123456789",
			56.5000, 128.9012, 380.9, 5.6,
			"0xpqr678stu901234567890123456789012345678901234567890123456789012345",
		},
		{
			"25550", "Roscosmos", "2024-01-15T15:00:00Z",
			"1 25550U 98067G   24015.62000000  .00000000  00000-0  00000+0 0  9996",
			"2 25550  57.6000 129.0123 0007890   0.0000   0.0000 15.78901234567890",
			57.6000, 129.0123, 550.1, 3.9,
			"0xstu901vwx234567890123456789012345678901234567890123456789012345678",
		},
		{
			"25551", "NORAD", "2024-01-15T15:30:00Z",
			"1 25551U 98067H   24015.64000000  .00000000  00000-0  00000+0 0  9997",
			"2 25551  58.7000 130.1234 0008901   0.0000   0.0000 15.89012345678901",
			58.7000, 130.1234, 420.6, 8.2,
			"0xvwx234yza567890123456789012345678901234567890123456789012345678901",
		},
		{
			"25552", "ESA", "2024-01-15T16:00:00Z",
			"1 25552U 98067J   24015.66000000  .00000000  00000-0  00000+0 0  9998",
			"2 25552  59.8000 131.2345 0009012   0.0000   0.0000 15.90123456789012",
			59.8000, 131.2345, 480.4, 6.7,
			"0xyza567bcd890123456789012345678901234567890123456789012345678901234",
		},
		{
			"25553", "JAXA", "2024-01-15T16:30:00Z",
			"1 25553U 98067K   24015.68000000  .00000000  00000-0  00000+0 0  9999",
			"2 25553  60.9000 132.3456 0010123   0.0000   0.0000 16.01234567890123",
			60.9000, 132.3456, 520.0, 4.4,
			"0xbcd890efg123456789012345678901234567890123456789012345678901234567",
		},
	}

	fixtures := make([]catalog.CreateInput, 0, len(entries))
	for _, e := range entries {
		epoch, _ := time.Parse(time.RFC3339, e.epoch)
		tx := e.onChainTx
		fixtures = append(fixtures, catalog.CreateInput{
			CatalogID: e.catalogID,
			Source:    e.source,
			Epoch:     epoch,
			TLELine1:  e.tleLine1,
			TLELine2:  e.tleLine2,
			Lat:       e.lat,
			Lon:       e.lon,
			Alt:       e.alt,
			RiskScore: e.riskScore,
			OnChainTx: &tx,
		})
	}
	return fixtures
}
