package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/alpe/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it describes the 900x600 chart", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.DatasetURL, convey.ShouldEqual, config.DefaultDatasetURL)
			convey.So(cfg.Width, convey.ShouldEqual, 900)
			convey.So(cfg.Height, convey.ShouldEqual, 600)
			convey.So([]int{cfg.PadTop, cfg.PadRight, cfg.PadBottom, cfg.PadLeft}, convey.ShouldResemble, []int{100, 20, 30, 75})
			convey.So(cfg.PointRadius, convey.ShouldEqual, 8)
			convey.So(cfg.FetchTimeout(), convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.TimePadding(), convey.ShouldEqual, 15*time.Second)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configs", t, func() {
		cases := map[string]func(*config.Config){
			"empty addr":        func(c *config.Config) { c.Addr = " " },
			"empty dataset":     func(c *config.Config) { c.DatasetURL = "" },
			"zero timeout":      func(c *config.Config) { c.FetchTimeoutMS = 0 },
			"zero size cap":     func(c *config.Config) { c.MaxDatasetBytes = 0 },
			"zero width":        func(c *config.Config) { c.Width = 0 },
			"negative padding":  func(c *config.Config) { c.PadTop = -1 },
			"no plot width":     func(c *config.Config) { c.PadLeft = 450 },
			"no plot height":    func(c *config.Config) { c.PadTop = 580 },
			"zero radius":       func(c *config.Config) { c.PointRadius = 0 },
			"negative year pad": func(c *config.Config) { c.YearPadding = -1 },
			"missing color":     func(c *config.Config) { c.ColorDoping = "" },
			"same colors":       func(c *config.Config) { c.ColorDoping = "#FF7F0E" },
			"unknown color":     func(c *config.Config) { c.ColorDoping = "notacolor" },
			"short hex color":   func(c *config.Config) { c.ColorNonDoping = "#12345" },
		}

		for _, mutate := range cases {
			cfg := config.New()
			mutate(cfg)
			err := cfg.Validate()

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldStartWith, "invalid alpe config: ")
		}
	})
}

func TestConfig_ValidateColors(t *testing.T) {
	convey.Convey("Given category colors given by name", t, func() {
		cfg := config.New()
		cfg.ColorNonDoping = "green"
		cfg.ColorDoping = "red"

		convey.Convey("Then the config is valid", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
