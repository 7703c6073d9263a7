package chart

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/alpe/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func twoRiders() []model.Record {
	return []model.Record{
		{Year: 1994, Time: "37:35", Name: "A", Nationality: "ITA", Doping: ""},
		{Year: 2001, Time: "38:00", Name: "B", Nationality: "FRA", Doping: "EPO"},
	}
}

func mustRenderer(records []model.Record, opts ...Option) *Renderer {
	ds, err := model.NewDataset(records)
	So(err, ShouldBeNil)
	r, err := New(ds, opts...)
	So(err, ShouldBeNil)
	return r
}

func TestComputeDomains(t *testing.T) {
	Convey("Given the two-rider dataset", t, func() {
		ds, err := model.NewDataset(twoRiders())
		So(err, ShouldBeNil)

		Convey("When computing domains with the default layout", func() {
			d, err := ComputeDomains(ds, DefaultLayout())

			Convey("Then years are widened by one and the slowest time by 15s", func() {
				So(err, ShouldBeNil)
				So(d.MinYear, ShouldEqual, 1993)
				So(d.MaxYear, ShouldEqual, 2002)
				So(d.MinTime, ShouldEqual, 37*time.Minute+35*time.Second)
				So(d.MaxTime, ShouldEqual, 38*time.Minute+15*time.Second)
			})
		})

		Convey("When no dataset is given", func() {
			_, err := ComputeDomains(nil, DefaultLayout())

			Convey("Then ErrNoDataset is returned", func() {
				So(errors.Is(err, ErrNoDataset), ShouldBeTrue)
			})
		})
	})
}

func TestScalesAtBoundaries(t *testing.T) {
	Convey("Given a renderer with the default layout", t, func() {
		r := mustRenderer(twoRiders())
		l := r.Layout()
		d := r.Domains()

		Convey("Then the padded year bounds land on pad.left and w - pad.left", func() {
			So(r.XScale().Map(float64(d.MinYear)), ShouldAlmostEqual, l.Padding.Left)
			So(r.XScale().Map(float64(d.MaxYear)), ShouldAlmostEqual, l.Width-l.Padding.Left)
		})

		Convey("And the time bounds land on pad.top and h - pad.bottom", func() {
			So(r.YScale().Map(d.MinTime), ShouldAlmostEqual, l.Padding.Top)
			So(r.YScale().Map(d.MaxTime), ShouldAlmostEqual, l.Height-l.Padding.Bottom)
		})
	})
}

func TestRenderScene(t *testing.T) {
	Convey("Given the two-rider dataset", t, func() {
		r := mustRenderer(twoRiders())

		Convey("When rendering", func() {
			scene := r.Render()

			Convey("Then two circles are drawn with distinct indices", func() {
				So(len(scene.Points), ShouldEqual, 2)
				seen := map[int]bool{}
				for _, p := range scene.Points {
					So(p.Index, ShouldBeBetweenOrEqual, 0, len(scene.Points)-1)
					So(seen[p.Index], ShouldBeFalse)
					seen[p.Index] = true
					So(p.Class, ShouldEqual, "dot")
					So(p.R, ShouldEqual, 8.0)
				}
			})

			Convey("And the two points have different colors", func() {
				So(scene.Points[0].Fill, ShouldNotEqual, scene.Points[1].Fill)
			})

			Convey("And every point color matches its legend swatch", func() {
				legend := map[bool]string{}
				for _, s := range scene.Legend.Swatches {
					legend[s.Doping] = s.Box.Fill
				}
				for _, p := range scene.Points {
					So(p.Fill, ShouldEqual, legend[p.Doping])
				}
			})

			Convey("And points carry their year and anchored time", func() {
				So(scene.Points[0].XValue, ShouldEqual, 1994)
				So(scene.Points[1].YValue.Equal(model.Anchor.Add(38*time.Minute)), ShouldBeTrue)
			})

			Convey("And the surface labels are present", func() {
				So(scene.Width, ShouldEqual, 900.0)
				So(scene.Height, ShouldEqual, 600.0)
				So(scene.Texts[0].ID, ShouldEqual, "title")
				So(scene.Texts[0].Content, ShouldEqual, "Doping in Professional Bike Racing")
				So(scene.Texts[2].Rotate, ShouldEqual, -90.0)
			})

			Convey("And the tooltip starts hidden", func() {
				So(scene.Tooltip.Visible, ShouldBeFalse)
				So(scene.Tooltip.Opacity, ShouldEqual, 0.0)
			})
		})
	})

	Convey("Given records with identical times in different years", t, func() {
		records := []model.Record{
			{Year: 1997, Time: "37:35", Name: "A", Nationality: "ITA"},
			{Year: 2004, Time: "37:35", Name: "B", Nationality: "GER"},
			{Year: 2006, Time: "38:10", Name: "C", Nationality: "USA"},
		}
		scene := mustRenderer(records).Render()

		Convey("Then they share the same y coordinate", func() {
			So(scene.Points[0].CY, ShouldEqual, scene.Points[1].CY)
			So(scene.Points[0].CX, ShouldBeLessThan, scene.Points[1].CX)
		})
	})
}

func TestRenderAxes(t *testing.T) {
	Convey("Given a renderer", t, func() {
		r := mustRenderer(twoRiders())
		x, y := RenderAxes(r.XScale(), r.YScale(), r.Layout())

		Convey("Then the x axis sits at the bottom with year labels", func() {
			So(x.ID, ShouldEqual, "x-axis")
			So(x.Orient, ShouldEqual, Bottom)
			So(x.TranslateY, ShouldEqual, 570.0)
			So(x.RangeStart, ShouldEqual, 75.0)
			So(x.RangeEnd, ShouldEqual, 825.0)
			So(len(x.Ticks), ShouldBeGreaterThan, 0)
			So(x.Ticks[0].Label, ShouldEqual, "1993")
		})

		Convey("And the y axis sits left with MM:SS labels", func() {
			So(y.ID, ShouldEqual, "y-axis")
			So(y.Orient, ShouldEqual, Left)
			So(y.TranslateX, ShouldEqual, 75.0)
			So(len(y.Ticks), ShouldBeGreaterThan, 0)
			for _, tk := range y.Ticks {
				So(len(tk.Label), ShouldEqual, 5)
				So(tk.Label[2:3], ShouldEqual, ":")
				So(tk.Offset, ShouldBeBetweenOrEqual, 100, 570)
			}
		})
	})
}

func TestRenderLegend(t *testing.T) {
	Convey("Given the default layout", t, func() {
		legend := RenderLegend(DefaultLayout(), DefaultPalette())

		Convey("Then the frame is 125x68 at the right edge above the middle", func() {
			So(legend.Frame.ID, ShouldEqual, "legend")
			So(legend.Frame.X, ShouldEqual, 755.0)
			So(legend.Frame.Y, ShouldEqual, 232.0)
			So(legend.Frame.Fill, ShouldEqual, "none")
		})

		Convey("And it has labeled swatches in Non-doping, Doping order", func() {
			So(len(legend.Swatches), ShouldEqual, 2)
			So(legend.Swatches[0].Label.Content, ShouldEqual, "Non-doping")
			So(legend.Swatches[1].Label.Content, ShouldEqual, "Doping")
			So(legend.Swatches[0].Box.Y, ShouldEqual, 242.0)
			So(legend.Swatches[1].Box.Y, ShouldEqual, 270.0)
			So(legend.Swatches[0].Box.X, ShouldEqual, 852.0)
			So(legend.Swatches[1].Box.Fill, ShouldEqual, DefaultPalette().Doping)
		})
	})
}

func TestTooltip(t *testing.T) {
	Convey("Given the two-rider renderer", t, func() {
		r := mustRenderer(twoRiders())

		Convey("When hovering the clean rider", func() {
			tt, err := r.Hover(0, Pointer{X: 120, Y: 240})

			Convey("Then the tooltip is visible at the pointer without an allegation line", func() {
				So(err, ShouldBeNil)
				So(tt.Visible, ShouldBeTrue)
				So(tt.Opacity, ShouldEqual, 0.8)
				So(tt.Left, ShouldEqual, 120.0)
				So(tt.Top, ShouldEqual, 240.0)
				So(tt.DataYear, ShouldEqual, 1994)
				So(tt.Content.Lines(), ShouldResemble, []string{"A - ITA", "1994 - Time: 37:35"})
			})
		})

		Convey("When hovering the second rider", func() {
			tt, err := r.Hover(1, Pointer{X: 10, Y: 20})

			Convey("Then the allegation is on its own line", func() {
				So(err, ShouldBeNil)
				So(tt.Content.Text(), ShouldContainSubstring, "EPO")
				So(tt.Content.Lines(), ShouldResemble, []string{"B - FRA", "2001 - Time: 38:00", "", "EPO"})
				So(tt.Content.Text(), ShouldEndWith, "38:00\n\nEPO")
			})

			Convey("And unhovering hides it", func() {
				hidden := Unhover(tt)
				So(hidden.Visible, ShouldBeFalse)
				So(hidden.Opacity, ShouldEqual, 0.0)
				So(tt.Visible, ShouldBeTrue)
			})
		})

		Convey("When hovering an unknown index", func() {
			_, err := r.Hover(2, Pointer{})

			Convey("Then ErrPointNotFound is returned", func() {
				So(errors.Is(err, ErrPointNotFound), ShouldBeTrue)
			})
		})

		Convey("When listing all tooltips", func() {
			all := r.Tooltips()

			Convey("Then they align with point indices", func() {
				So(len(all), ShouldEqual, 2)
				So(all[1].Allegation, ShouldEqual, "EPO")
			})
		})
	})
}

func TestOptions(t *testing.T) {
	Convey("Given custom options", t, func() {
		layout := DefaultLayout()
		layout.Width, layout.Height = 1200, 800
		layout.TickCount = 0
		palette := Palette{NonDoping: "green", Doping: "red"}

		r := mustRenderer(twoRiders(), WithLayout(layout), WithPalette(palette), WithTexts(Texts{Title: "T"}))

		Convey("Then they are applied and a missing tick count falls back", func() {
			So(r.Layout().Width, ShouldEqual, 1200.0)
			So(r.Layout().TickCount, ShouldEqual, 10)
			So(r.Palette(), ShouldResemble, palette)
			So(r.Render().Texts[0].Content, ShouldEqual, "T")
		})

		Convey("And invalid options are ignored", func() {
			r := mustRenderer(twoRiders(), WithLayout(Layout{}), WithPalette(Palette{Doping: "x"}))
			So(r.Layout().Width, ShouldEqual, 900.0)
			So(r.Palette(), ShouldResemble, DefaultPalette())
		})
	})
}
