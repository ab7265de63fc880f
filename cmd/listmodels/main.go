// Diagnostic: lists the Gemini models available to the configured API key.
// Useful when a chat request fails with model-not-found.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

const modelsURL = "https://generativelanguage.googleapis.com/v1beta/models"

type modelList struct {
	Models []struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		color.Red("GEMINI_API_KEY not found in environment or .env")
		os.Exit(1)
	}
	// Show prefix/suffix only, enough to verify which key is loaded
	masked := apiKey
	if len(apiKey) > 8 {
		masked = apiKey[:4] + "..." + apiKey[len(apiKey)-4:]
	}
	color.Green("API Key found: %s", masked)

	req, err := http.NewRequest("GET", modelsURL, nil)
	if err != nil {
		color.Red("Failed to build request: %v", err)
		os.Exit(1)
	}
	req.Header.Set("x-goog-api-key", apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		color.Red("Request failed: %v", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		color.Red("Failed to read response: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		color.Red("Status: %s\n%s", resp.Status, string(body))
		os.Exit(1)
	}

	var list modelList
	if err := json.Unmarshal(body, &list); err != nil {
		color.Red("Failed to parse response: %v", err)
		os.Exit(1)
	}

	color.Cyan("\n--- Available Models (%d) ---", len(list.Models))
	for _, m := range list.Models {
		fmt.Printf("Name: %s\n", m.Name)
		fmt.Printf("Supported methods: %s\n", strings.Join(m.SupportedGenerationMethods, ", "))
		fmt.Println(strings.Repeat("-", 20))
	}
}
