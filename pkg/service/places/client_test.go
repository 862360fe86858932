package places_test

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
	"github.com/reviewsight-lab/reviewsight/pkg/service/places"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := places.New("")
	gt.Error(t, err)

	client, err := places.New("test-key")
	gt.NoError(t, err)
	gt.Value(t, client.Platform()).Equal(types.PlatformGoogle)
}

func TestResolve(t *testing.T) {
	t.Run("returns the first candidate place ID", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.URL.Path).Equal("/findplacefromtext/json")
			gt.Value(t, r.URL.Query().Get("input")).Equal("Cafe Lumiere Paris")
			gt.Value(t, r.URL.Query().Get("key")).Equal("test-key")

			w.Write([]byte(`{"status":"OK","candidates":[{"place_id":"ChIJabc123"}]}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client, err := places.New("test-key", places.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		s := model.NewSession("Cafe Lumiere", "Paris", "Lumiere App", "cafelumiere.fr")
		id, err := client.Resolve(context.Background(), s)
		gt.NoError(t, err).Required()
		gt.Value(t, id).Equal("ChIJabc123")
	})

	t.Run("ZERO_RESULTS maps to ErrSourceNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ZERO_RESULTS","candidates":[]}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client, err := places.New("test-key", places.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		s := model.NewSession("Nobody", "Nulle Part", "App", "nobody.fr")
		_, err = client.Resolve(context.Background(), s)
		gt.Bool(t, errors.Is(err, interfaces.ErrSourceNotFound)).True()
	})

	t.Run("transport failure maps to ErrSourceNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client, err := places.New("test-key", places.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		s := model.NewSession("Cafe Lumiere", "Paris", "App", "cafelumiere.fr")
		_, err = client.Resolve(context.Background(), s)
		gt.Bool(t, errors.Is(err, interfaces.ErrSourceNotFound)).True()
	})
}

func TestFetchReviews(t *testing.T) {
	const detailsBody = `{"status":"OK","result":{"rating":4.2,"user_ratings_total":3,"reviews":[
	  {"author_name":"Marie L.","rating":5,"text":"Excellent accueil","time":1746086400,"language":"fr"},
	  {"author_name":"Robot X.","rating":0,"text":"invalide","time":1746086400,"language":"fr"},
	  {"author_name":"Thomas B.","rating":2,"text":"Trop cher","time":1746172800,"language":"fr"}
	]}}`

	t.Run("normalizes reviews and drops out-of-domain ratings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.URL.Path).Equal("/details/json")
			gt.Value(t, r.URL.Query().Get("place_id")).Equal("ChIJabc123")
			gt.Value(t, r.URL.Query().Get("language")).Equal("fr")

			w.Write([]byte(detailsBody)) //nolint:errcheck
		}))
		defer srv.Close()

		client, err := places.New("test-key", places.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		reviews, err := client.FetchReviews(context.Background(), "ChIJabc123", 10)
		gt.NoError(t, err).Required()
		gt.Array(t, reviews).Length(2).Required()

		gt.Value(t, reviews[0].ID).Equal("google_0")
		gt.Value(t, reviews[0].Platform).Equal(types.PlatformGoogle)
		gt.Value(t, reviews[0].Author).Equal("Marie L.")
		gt.Value(t, reviews[0].Rating).Equal(5)
		gt.Value(t, reviews[0].Date).Equal("2025-05-01")
		gt.Value(t, reviews[0].Language).Equal("fr")

		gt.Value(t, reviews[1].Author).Equal("Thomas B.")
	})

	t.Run("truncates to maxResults", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(detailsBody)) //nolint:errcheck
		}))
		defer srv.Close()

		client, err := places.New("test-key", places.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		reviews, err := client.FetchReviews(context.Background(), "ChIJabc123", 1)
		gt.NoError(t, err).Required()
		gt.Array(t, reviews).Length(1)
	})

	t.Run("non-OK status returns an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"REQUEST_DENIED"}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client, err := places.New("test-key", places.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		_, err = client.FetchReviews(context.Background(), "ChIJabc123", 10)
		gt.Error(t, err)
	})
}
