package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

// Smoke test against a locally running server. Requires Memgraph and a
// reachable model provider; `go run ./cmd/test_integration` after starting
// the service.
func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Health
	fmt.Println("1. Checking health...")
	if !sendRequest("GET", "/healthz", nil) {
		fmt.Println("FAILED: Health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health check")

	// 2. Verify a claim
	fmt.Println("2. Verifying claim...")
	payload := map[string]string{
		"claim": "The Great Wall of China is visible from space with the naked eye.",
	}

	if !sendRequest("POST", "/v1/verify", payload) {
		fmt.Println("FAILED: Verify claim")
		os.Exit(1)
	}
	fmt.Println("PASSED: Verify claim")

	// 3. Recent verifications should now include it
	fmt.Println("3. Listing recent verifications...")
	if !sendRequest("GET", "/v1/verifications?limit=5", nil) {
		fmt.Println("FAILED: List verifications")
		os.Exit(1)
	}
	fmt.Println("PASSED: List verifications")
}

func sendRequest(method, endpoint string, payload interface{}) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 90 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Response: %s\n", string(respBody))

	return true
}
