package benchmark

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/portfolio-site-api/internal/identity"
	"github.com/portfolio-site-api/internal/ratelimit"
	"github.com/portfolio-site-api/internal/validation"
)

type mapSession map[string]interface{}

func (m mapSession) GetString(key string) string {
	s, _ := m[key].(string)
	return s
}

func (m mapSession) GetInt64(key string) (int64, bool) {
	n, ok := m[key].(int64)
	return n, ok
}

// BenchmarkResolveIdentity benchmarks per-request identity resolution,
// which runs on every comment and project-detail request.
func BenchmarkResolveIdentity(b *testing.B) {
	sessions := []mapSession{
		{identity.KeyNativeUserID: int64(42)},
		{identity.KeyUserName: "Visitor", identity.KeyUserEmail: "visitor@test.com"},
		{identity.KeyAuthorName: "Legacy Visitor"},
		{},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		identity.Resolve(sessions[i%len(sessions)])
	}
}

// BenchmarkMatchesAuthor benchmarks the pseudo-ownership check used by
// comment update and delete authorization.
func BenchmarkMatchesAuthor(b *testing.B) {
	ident := identity.Resolve(mapSession{
		identity.KeyUserName:  "Visitor",
		identity.KeyUserEmail: "visitor@test.com",
	})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		ident.MatchesAuthor("Visitor", "visitor@test.com")
	}
}

// BenchmarkRateLimiterCheck benchmarks the in-memory attempt store with
// a populated key space, the hot path of every login request.
func BenchmarkRateLimiterCheck(b *testing.B) {
	store := ratelimit.NewMemoryStore(5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		store.RecordFailure(ctx, "10.0."+strconv.Itoa(i/256)+"."+strconv.Itoa(i%256))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		store.Check(ctx, "10.0.1.1")
	}

	b.ReportMetric(float64(b.N)/b.Elapsed().Seconds(), "checks/sec")
}

// BenchmarkRateLimiterRecord benchmarks the failure-recording write path.
func BenchmarkRateLimiterRecord(b *testing.B) {
	store := ratelimit.NewMemoryStore(5, 15*time.Minute)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		key := "192.168.0." + strconv.Itoa(i%256)
		store.RecordFailure(ctx, key)
		if i%5 == 4 {
			store.RecordSuccess(ctx, key)
		}
	}
}

// BenchmarkValidEmail benchmarks the email format check shared by
// registration and the contact form.
func BenchmarkValidEmail(b *testing.B) {
	emails := []string{
		"visitor@test.com",
		"not-an-email",
		"first.last+tag@sub.example.co",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.ValidEmail(emails[i%len(emails)])
	}
}
