package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okian/alpe/internal/adapters/source"
	. "github.com/smartystreets/goconvey/convey"
)

const payload = `[
  {"Time":"36:50","Place":1,"Seconds":2210,"Name":"Marco Pantani","Year":1995,"Nationality":"ITA","Doping":"Alleged drug use during 1995 due to high hematocrit levels","URL":"https://en.wikipedia.org/wiki/Marco_Pantani#Alleged_drug_use"},
  {"Time":"39:30","Place":2,"Seconds":2370,"Name":"Nairo Quintana","Year":2015,"Nationality":"COL","Doping":"","URL":""}
]`

func TestHTTPSource(t *testing.T) {
	Convey("Given a dataset server", t, func() {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			switch r.URL.Path {
			case "/ok":
				_, _ = w.Write([]byte(payload))
			case "/missing":
				http.NotFound(w, r)
			case "/garbage":
				_, _ = w.Write([]byte(`{"not":"an array"`))
			case "/big":
				_, _ = w.Write([]byte("[" + strings.Repeat(" ", 4096) + "]"))
			case "/slow":
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			}
		}))
		defer srv.Close()
		ctx := context.Background()

		Convey("When the payload is valid", func() {
			records, err := source.NewHTTPSource(srv.URL+"/ok", source.WithUserAgent("alpe-test")).Fetch(ctx)

			Convey("Then records are decoded in order", func() {
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 2)
				So(records[0].Name, ShouldEqual, "Marco Pantani")
				So(records[0].HasDoping(), ShouldBeTrue)
				So(records[1].Time, ShouldEqual, "39:30")
				So(records[1].HasDoping(), ShouldBeFalse)
				So(gotUA, ShouldEqual, "alpe-test")
			})
		})

		Convey("When the server answers 404", func() {
			_, err := source.NewHTTPSource(srv.URL + "/missing").Fetch(ctx)

			Convey("Then ErrFetch is returned", func() {
				So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "404")
			})
		})

		Convey("When the body is not a JSON array", func() {
			_, err := source.NewHTTPSource(srv.URL + "/garbage").Fetch(ctx)

			Convey("Then ErrFetch is returned", func() {
				So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
				So(errors.Is(err, source.ErrTooLarge), ShouldBeFalse)
			})
		})

		Convey("When the body exceeds the cap", func() {
			_, err := source.NewHTTPSource(srv.URL+"/big", source.WithMaxBytes(512)).Fetch(ctx)

			Convey("Then ErrTooLarge is returned", func() {
				So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
				So(errors.Is(err, source.ErrTooLarge), ShouldBeTrue)
			})
		})

		Convey("When the server is slower than the timeout", func() {
			start := time.Now()
			_, err := source.NewHTTPSource(srv.URL+"/slow", source.WithTimeout(50*time.Millisecond)).Fetch(ctx)

			Convey("Then the fetch fails fast", func() {
				So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
				So(time.Since(start), ShouldBeLessThan, time.Second)
			})
		})

		Convey("When the URL is invalid", func() {
			_, err := source.NewHTTPSource("::nope").Fetch(ctx)

			Convey("Then ErrFetch is returned", func() {
				So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
			})
		})
	})
}

func TestFileSource(t *testing.T) {
	Convey("Given a dataset file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "cyclists.json")
		So(os.WriteFile(path, []byte(payload), 0o600), ShouldBeNil)

		Convey("When read through New with a file:// location", func() {
			src := source.New("file://" + path)
			records, err := src.Fetch(context.Background())

			Convey("Then it is a FileSource with both records", func() {
				_, ok := src.(*source.FileSource)
				So(ok, ShouldBeTrue)
				So(src.Location(), ShouldEqual, path)
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 2)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := source.New(filepath.Join(dir, "nope.json")).Fetch(context.Background())

			Convey("Then ErrFetch is returned", func() {
				So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
			})
		})

		Convey("When the context is already canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := source.New(path).Fetch(ctx)

			Convey("Then ErrFetch wraps the cancellation", func() {
				So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestNewSelectsHTTP(t *testing.T) {
	Convey("Given an https location", t, func() {
		src := source.New("https://example.org/data.json")

		Convey("Then an HTTPSource is returned", func() {
			_, ok := src.(*source.HTTPSource)
			So(ok, ShouldBeTrue)
			So(src.Location(), ShouldEqual, "https://example.org/data.json")
		})
	})
}
