package echarts

import (
	"bytes"
	"testing"

	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScatter(t *testing.T) {
	Convey("Given a two-rider renderer", t, func() {
		ds, err := model.NewDataset([]model.Record{
			{Year: 1994, Time: "37:35", Name: "A", Nationality: "ITA"},
			{Year: 2001, Time: "38:00", Name: "B", Nationality: "FRA", Doping: "EPO"},
			{Year: 2004, Time: "39:12", Name: "C", Nationality: "GER", Doping: "Blood doping"},
		})
		So(err, ShouldBeNil)
		r, err := chart.New(ds)
		So(err, ShouldBeNil)

		Convey("When splitting records by category", func() {
			clean := seriesData(ds, false)
			doped := seriesData(ds, true)

			Convey("Then each record lands in exactly one series", func() {
				So(len(clean), ShouldEqual, 1)
				So(len(doped), ShouldEqual, 2)
				So(doped[0].Value, ShouldResemble, []any{2001, 38 * 60})
				So(doped[1].Name, ShouldEqual, "C - GER<br>2004 - Time: 39:12<br><br>Blood doping")
			})
		})

		Convey("When rendering the page", func() {
			var buf bytes.Buffer
			err := Render(&buf, r)
			out := buf.String()

			Convey("Then both series are present with palette colors", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Doping in Professional Bike Racing")
				So(out, ShouldContainSubstring, "Non-doping")
				So(out, ShouldContainSubstring, r.Palette().Doping)
				So(out, ShouldContainSubstring, r.Palette().NonDoping)
			})

			Convey("And faster times are drawn at the top", func() {
				So(out, ShouldContainSubstring, `"inverse":true`)
			})
		})
	})
}

func TestTooltipHTML(t *testing.T) {
	Convey("Given content with markup", t, func() {
		c := chart.Content{Heading: "<A> - ITA", Detail: "1994 - Time: 37:35"}

		Convey("Then lines are escaped and joined", func() {
			So(tooltipHTML(c), ShouldEqual, "&lt;A&gt; - ITA<br>1994 - Time: 37:35")
		})
	})
}
