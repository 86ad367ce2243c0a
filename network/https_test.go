package network

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/luca-patrignani/hand-scorer/application"
	"github.com/luca-patrignani/hand-scorer/domain/poker"
)

func TestGenerateSelfSignedCert(t *testing.T) {
	cert, pemBytes, err := GenerateSelfSignedCert("127.0.0.1:8443")
	if err != nil {
		t.Fatal(err)
	}
	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(leaf.IPAddresses) != 1 || !leaf.IPAddresses[0].Equal(net.IPv4(127, 0, 0, 1)) {
		t.Fatalf("expected IP SAN 127.0.0.1, got %v", leaf.IPAddresses)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemBytes) {
		t.Fatal("PEM output was not accepted by the cert pool")
	}

	cert, _, err = GenerateSelfSignedCert("localhost:8443")
	if err != nil {
		t.Fatal(err)
	}
	leaf, err = x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(leaf.DNSNames) != 1 || leaf.DNSNames[0] != "localhost" {
		t.Fatalf("expected DNS SAN localhost, got %v", leaf.DNSNames)
	}
}

func TestGenerateSelfSignedCertBadAddress(t *testing.T) {
	if _, _, err := GenerateSelfSignedCert("no-port"); err == nil {
		t.Fatal("expected an error for an address without port")
	}
}

func TestHttpsScore(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	cert, pemBytes, err := GenerateSelfSignedCert(l.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	certPool := x509.NewCertPool()
	certPool.AppendCertsFromPEM(pemBytes)

	svc := application.NewScoringService(poker.DefaultScoreTable, 1, nil)
	s := NewServer(svc, nil, WithTLS(cert))
	s.Start(l)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := s.Close(ctx); err != nil {
			t.Error(err)
		}
	}()

	client := &http.Client{
		Transport: &http.Transport{TLSClientConfig: &tls.Config{RootCAs: certPool}},
		Timeout:   5 * time.Second,
	}
	resp, err := client.Post("https://"+l.Addr().String()+"/api/score", "application/json",
		strings.NewReader(`{"cards":["AS","AH","10D","10C","KS"]}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, resp.StatusCode, body)
	}
	var er EvaluationResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		t.Fatal(err)
	}
	if er.Score != 248 {
		t.Fatalf("expected %v, got %v", 248, er.Score)
	}
}
