package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"flight-booking/cmd/api/services"
	"flight-booking/cmd/internal/logger"
	"flight-booking/repositories"
)

// seedFlight 는 시드 파일의 항공편 한 건이다. 시각은 관리자 화면과 같은 형식을 받는다.
type seedFlight struct {
	FlightNumber string  `yaml:"flight_number"`
	Departure    string  `yaml:"departure"`
	Destination  string  `yaml:"destination"`
	DeptTime     string  `yaml:"dept_time"`
	DeptAirport  string  `yaml:"dept_ap"`
	ArrvTime     string  `yaml:"arrv_time"`
	ArrvAirport  string  `yaml:"arrv_ap"`
	Airline      string  `yaml:"airline"`
	Price        float64 `yaml:"price"`
	TotalSeat    int     `yaml:"total_seat"`
}

type seedFile struct {
	Flights []seedFlight `yaml:"flights"`
}

// parseSeed 는 시드 YAML 을 FlightInput 목록으로 바꾼다.
func parseSeed(data []byte) ([]services.FlightInput, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	out := make([]services.FlightInput, 0, len(f.Flights))
	for i, s := range f.Flights {
		dept, ok := services.ParseTime(s.DeptTime)
		if !ok {
			return nil, fmt.Errorf("flights[%d] %s: invalid dept_time %q", i, s.FlightNumber, s.DeptTime)
		}
		arrv, ok := services.ParseTime(s.ArrvTime)
		if !ok {
			return nil, fmt.Errorf("flights[%d] %s: invalid arrv_time %q", i, s.FlightNumber, s.ArrvTime)
		}
		out = append(out, services.FlightInput{
			FlightNumber: s.FlightNumber,
			Departure:    s.Departure,
			Destination:  s.Destination,
			DeptTime:     dept,
			DeptAirport:  s.DeptAirport,
			ArrvTime:     arrv,
			ArrvAirport:  s.ArrvAirport,
			Airline:      s.Airline,
			Price:        s.Price,
			TotalSeat:    s.TotalSeat,
		})
	}
	return out, nil
}

func newSeedFlightsCmd(v *viper.Viper) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed-flights",
		Short: "Insert flights from a YAML file",
		Long: `Insert flights listed in a YAML file. Flights whose number already exists
are skipped, so the command can be re-run safely.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			inputs, err := parseSeed(data)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := connect(ctx, v)
			if err != nil {
				return err
			}
			defer pool.Close()

			admin := services.NewAdminService(repositories.NewStore(pool), nil, nil, nil, nil)
			added, skipped := 0, 0
			for _, in := range inputs {
				if _, err := admin.AddFlight(ctx, in); err != nil {
					if errors.Is(err, services.ErrFlightExists) {
						skipped++
						continue
					}
					return fmt.Errorf("add flight %s: %w", in.FlightNumber, err)
				}
				added++
			}

			logger.InfoWithFields("flights seeded", logger.Fields{"file": file, "added": added, "skipped": skipped})
			cmd.Printf("added %d flight(s), skipped %d existing\n", added, skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed YAML file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
