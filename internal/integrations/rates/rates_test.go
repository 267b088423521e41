package rates

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/simplebank/internal/config"
)

const feedResponse = `<?xml version="1.0" encoding="utf-8"?>
<Envelope>
	<Body>
		<KeyRateResponse>
			<KeyRate>
				<KR><DT>2026-08-29</DT><Rate>4.50</Rate></KR>
				<KR><DT>2026-08-28</DT><Rate>4.25</Rate></KR>
			</KeyRate>
		</KeyRateResponse>
	</Body>
</Envelope>`

func newTestClient(url string) *Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClient(&config.Config{RateFeedURL: url}, logger)
}

func TestGetInterestRate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method=%s want=POST", r.Method)
		}
		w.Write([]byte(feedResponse))
	}))
	defer ts.Close()

	rate, err := newTestClient(ts.URL).GetInterestRate()
	if err != nil {
		t.Fatalf("GetInterestRate: %v", err)
	}
	// The first KR element carries the latest rate.
	if rate != 4.50 {
		t.Fatalf("rate=%v want=4.50", rate)
	}
}

func TestGetInterestRateBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	if _, err := newTestClient(ts.URL).GetInterestRate(); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestGetInterestRateEmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><Envelope></Envelope>`))
	}))
	defer ts.Close()

	if _, err := newTestClient(ts.URL).GetInterestRate(); err == nil {
		t.Fatal("expected error when no rate data present")
	}
}
