package svg_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/okian/alpe/internal/adapters/render/svg"
	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func renderer() *chart.Renderer {
	ds, err := model.NewDataset([]model.Record{
		{Year: 1994, Time: "37:35", Name: "A", Nationality: "ITA"},
		{Year: 2001, Time: "38:00", Name: "B <b>", Nationality: "FRA", Doping: "EPO & more"},
	})
	So(err, ShouldBeNil)
	r, err := chart.New(ds)
	So(err, ShouldBeNil)
	return r
}

func TestChart(t *testing.T) {
	Convey("Given a rendered scene", t, func() {
		scene := renderer().Render()

		Convey("When rendering the SVG", func() {
			var buf bytes.Buffer
			err := svg.Chart(scene).Render(context.Background(), &buf)
			out := buf.String()

			Convey("Then it contains the surface and identified elements", func() {
				So(err, ShouldBeNil)
				So(out, ShouldStartWith, "<svg")
				So(out, ShouldEndWith, "</svg>")
				So(out, ShouldContainSubstring, `width="900" height="600"`)
				So(out, ShouldContainSubstring, `id="title"`)
				So(out, ShouldContainSubstring, `id="x-axis" transform="translate(0,570)"`)
				So(out, ShouldContainSubstring, `id="y-axis" transform="translate(75,0)"`)
				So(out, ShouldContainSubstring, `id="legend"`)
				So(out, ShouldContainSubstring, ">Non-doping</text>")
				So(out, ShouldContainSubstring, "rotate(-90)")
			})

			Convey("And one circle per record with data attributes", func() {
				So(strings.Count(out, "<circle "), ShouldEqual, 2)
				So(out, ShouldContainSubstring, `data-xvalue="1994"`)
				So(out, ShouldContainSubstring, `data-yvalue="1970-01-01T00:38:00Z"`)
				So(out, ShouldContainSubstring, `index="1"`)
				So(out, ShouldContainSubstring, `class="dot"`)
			})

			Convey("And year ticks are labeled without separators", func() {
				So(out, ShouldContainSubstring, ">1995</text>")
				So(out, ShouldNotContainSubstring, "1,995")
			})
		})
	})
}

func TestPage(t *testing.T) {
	Convey("Given a page with a scene", t, func() {
		r := renderer()
		scene := r.Render()
		page := svg.Page{Title: "Alpe d'Huez", Scene: &scene, Tooltips: r.Tooltips()}

		Convey("When rendering", func() {
			var buf bytes.Buffer
			So(svg.PageComponent(page).Render(context.Background(), &buf), ShouldBeNil)
			out := buf.String()

			Convey("Then the container holds the chart and the hidden tooltip", func() {
				So(out, ShouldStartWith, "<!DOCTYPE html>")
				So(out, ShouldContainSubstring, `<div class="container"><svg`)
				So(out, ShouldContainSubstring, `<div id="tooltip" style="opacity: 0"></div>`)
				So(out, ShouldContainSubstring, `href="/static/style.css"`)
				So(out, ShouldContainSubstring, `src="/static/tooltip.js"`)
			})

			Convey("And tooltip content is embedded as escaped JSON", func() {
				So(out, ShouldContainSubstring, `id="tooltip-data"`)
				So(out, ShouldContainSubstring, `"heading":"B \u003cb\u003e - FRA"`)
				So(out, ShouldContainSubstring, `"allegation":"EPO \u0026 more"`)
				So(out, ShouldNotContainSubstring, "B <b>")
			})
		})

		Convey("When assets are inlined", func() {
			page.InlineCSS = ".dot{}"
			page.InlineJS = "void 0;"
			var buf bytes.Buffer
			So(svg.PageComponent(page).Render(context.Background(), &buf), ShouldBeNil)

			Convey("Then no asset is linked", func() {
				So(buf.String(), ShouldContainSubstring, "<style>.dot{}</style>")
				So(buf.String(), ShouldContainSubstring, "<script>void 0;</script>")
				So(buf.String(), ShouldNotContainSubstring, "/static/")
			})
		})
	})

	Convey("Given a page without a scene", t, func() {
		var buf bytes.Buffer
		err := svg.PageComponent(svg.Page{Title: "x"}).Render(context.Background(), &buf)

		Convey("Then the container is empty and no message is shown", func() {
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `<div class="container"></div>`)
			So(buf.String(), ShouldNotContainSubstring, "<svg")
			So(buf.String(), ShouldContainSubstring, `id="tooltip-data">[]</script>`)
		})
	})
}
