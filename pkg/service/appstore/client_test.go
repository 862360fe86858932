package appstore_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/service/appstore"
)

func TestResolve(t *testing.T) {
	t.Run("returns track ID of the first match", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.URL.Path).Equal("/search")
			gt.Value(t, r.URL.Query().Get("term")).Equal("Lumiere App")
			gt.Value(t, r.URL.Query().Get("entity")).Equal("software")

			w.Write([]byte(`{"resultCount":1,"results":[{"trackId":123456789}]}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client := appstore.New(appstore.WithBaseURL(srv.URL))
		s := model.NewSession("Cafe Lumiere", "Paris", "Lumiere App", "cafelumiere.fr")

		id, err := client.Resolve(context.Background(), s)
		gt.NoError(t, err).Required()
		gt.Value(t, id).Equal("123456789")
	})

	t.Run("no match maps to ErrSourceNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resultCount":0,"results":[]}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client := appstore.New(appstore.WithBaseURL(srv.URL))
		s := model.NewSession("Nobody", "Nulle Part", "Ghost App", "ghost.fr")

		_, err := client.Resolve(context.Background(), s)
		gt.Bool(t, errors.Is(err, interfaces.ErrSourceNotFound)).True()
	})

	t.Run("server failure maps to ErrSourceNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := appstore.New(appstore.WithBaseURL(srv.URL))
		s := model.NewSession("Cafe Lumiere", "Paris", "Lumiere App", "cafelumiere.fr")

		_, err := client.Resolve(context.Background(), s)
		gt.Bool(t, errors.Is(err, interfaces.ErrSourceNotFound)).True()
	})
}

const feedBody = `{"feed":{"entry":[
  {"author":{"name":{"label":"Marie L."}},"im:rating":{"label":"5"},
   "title":{"label":"Parfait"},"content":{"label":"Excellente application"},
   "updated":{"label":"2025-05-01T10:00:00-07:00"}},
  {"author":{"name":{"label":"Thomas B."}},"im:rating":{"label":"not-a-number"},
   "title":{"label":"?"},"content":{"label":"Note invalide"},
   "updated":{"label":"2025-05-02T10:00:00-07:00"}},
  {"author":{"name":{"label":"Sophie D."}},"im:rating":{"label":"2"},
   "title":{"label":"Bof"},"content":{"label":"Trop de bugs"},
   "updated":{"label":"2025-05-03T10:00:00-07:00"}}
]}}`

func TestFetchReviews(t *testing.T) {
	t.Run("normalizes feed entries and drops unusable ratings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.URL.Path).Equal("/rss/customerreviews/id=123/sortBy=mostRecent/json")
			w.Write([]byte(feedBody)) //nolint:errcheck
		}))
		defer srv.Close()

		client := appstore.New(appstore.WithBaseURL(srv.URL))
		reviews, err := client.FetchReviews(context.Background(), "123", 10)
		gt.NoError(t, err).Required()
		gt.Array(t, reviews).Length(2).Required()

		gt.Value(t, reviews[0].ID).Equal("appstore_0")
		gt.Value(t, reviews[0].Platform).Equal(types.PlatformAppStore)
		gt.Value(t, reviews[0].Author).Equal("Marie L.")
		gt.Value(t, reviews[0].Rating).Equal(5)
		gt.Value(t, reviews[0].Title).Equal("Parfait")
		gt.Value(t, reviews[0].Date).Equal("2025-05-01")

		gt.Value(t, reviews[1].Author).Equal("Sophie D.")
		gt.Value(t, reviews[1].Rating).Equal(2)
	})

	t.Run("truncates to maxResults", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(feedBody)) //nolint:errcheck
		}))
		defer srv.Close()

		client := appstore.New(appstore.WithBaseURL(srv.URL))
		reviews, err := client.FetchReviews(context.Background(), "123", 1)
		gt.NoError(t, err).Required()
		gt.Array(t, reviews).Length(1)
	})

	t.Run("single-entry feed object is handled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"feed":{"entry":
			  {"author":{"name":{"label":"Seul A."}},"im:rating":{"label":"4"},
			   "title":{"label":"Bien"},"content":{"label":"Ça marche"},
			   "updated":{"label":"2025-05-04T10:00:00-07:00"}}
			}}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client := appstore.New(appstore.WithBaseURL(srv.URL))
		reviews, err := client.FetchReviews(context.Background(), "123", 10)
		gt.NoError(t, err).Required()
		gt.Array(t, reviews).Length(1).Required()
		gt.Value(t, reviews[0].Author).Equal("Seul A.")
	})

	t.Run("fetch failure returns an error, not partial data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := appstore.New(appstore.WithBaseURL(srv.URL))
		_, err := client.FetchReviews(context.Background(), "123", 10)
		gt.Error(t, err)
	})
}
