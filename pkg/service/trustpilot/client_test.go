package trustpilot_test

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
	"github.com/reviewsight-lab/reviewsight/pkg/service/trustpilot"
)

func TestResolve(t *testing.T) {
	t.Run("looks up the session domain", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.URL.Path).Equal("/business-units/find")
			gt.Value(t, r.URL.Query().Get("domain")).Equal("cafelumiere.fr")

			w.Write([]byte(`{"id":"bu-123"}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client := trustpilot.New(trustpilot.WithBaseURL(srv.URL))
		s := model.NewSession("Cafe Lumiere", "Paris", "Lumiere App", "cafelumiere.fr")

		id, err := client.Resolve(context.Background(), s)
		gt.NoError(t, err).Required()
		gt.Value(t, id).Equal("bu-123")
	})

	t.Run("empty domain falls back to the business name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.URL.Query().Get("domain")).Equal("cafelumiere.com")
			w.Write([]byte(`{"id":"bu-456"}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client := trustpilot.New(trustpilot.WithBaseURL(srv.URL))
		s := &model.Session{BusinessName: "Cafe Lumiere"}

		id, err := client.Resolve(context.Background(), s)
		gt.NoError(t, err).Required()
		gt.Value(t, id).Equal("bu-456")
	})

	t.Run("unknown domain maps to ErrSourceNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := trustpilot.New(trustpilot.WithBaseURL(srv.URL))
		s := model.NewSession("Nobody", "Nulle Part", "App", "nobody.example")

		_, err := client.Resolve(context.Background(), s)
		gt.Bool(t, errors.Is(err, interfaces.ErrSourceNotFound)).True()
	})
}

func TestFetchReviews(t *testing.T) {
	const body = `{"reviews":[
	  {"consumer":{"displayName":"Marie L."},"stars":5,"title":"Parfait",
	   "text":"Service impeccable","createdAt":"2025-05-01T09:30:00Z"},
	  {"consumer":{"displayName":"Thomas B."},"stars":1,"title":"Déçu",
	   "text":"Jamais reçu ma commande","createdAt":"2025-05-02T10:00:00Z"}
	]}`

	t.Run("normalizes one page of reviews", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.URL.Path).Equal("/reviews/business-unit/bu-123")
			gt.Value(t, r.URL.Query().Get("perPage")).Equal("20")

			w.Write([]byte(body)) //nolint:errcheck
		}))
		defer srv.Close()

		client := trustpilot.New(trustpilot.WithBaseURL(srv.URL))
		reviews, err := client.FetchReviews(context.Background(), "bu-123", 20)
		gt.NoError(t, err).Required()
		gt.Array(t, reviews).Length(2).Required()

		gt.Value(t, reviews[0].ID).Equal("trustpilot_0")
		gt.Value(t, reviews[0].Platform).Equal(types.PlatformTrustpilot)
		gt.Value(t, reviews[0].Author).Equal("Marie L.")
		gt.Value(t, reviews[0].Rating).Equal(5)
		gt.Value(t, reviews[0].Title).Equal("Parfait")
		gt.Value(t, reviews[0].Date).Equal("2025-05-01")
	})

	t.Run("fetch failure returns an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := trustpilot.New(trustpilot.WithBaseURL(srv.URL))
		_, err := client.FetchReviews(context.Background(), "bu-123", 20)
		gt.Error(t, err)
	})
}
