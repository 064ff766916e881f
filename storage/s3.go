package storage

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"
)

// Avatar images are stored in Cloudinary. Configuration via environment:
// CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET,
// CLOUDINARY_FOLDER (optional).

func InitializeS3() {}

// UploadBase64Image performs a signed upload of a base64-encoded image and
// returns the hosted URL, or an empty URL on failure.
func UploadBase64Image(base64ImageSrc string, publicID string) map[string]string {
	if base64ImageSrc == "" {
		fmt.Printf("ERROR: Empty base64 image\n")
		return map[string]string{"url": ""}
	}

	i := strings.Index(base64ImageSrc, ",")
	payload := base64ImageSrc
	if i != -1 {
		payload = base64ImageSrc[i+1:]
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	folder := os.Getenv("CLOUDINARY_FOLDER")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		fmt.Printf("ERROR: Missing Cloudinary env vars\n")
		return map[string]string{"url": ""}
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + cloudName + "/image/upload"

	finalPublicID := publicID
	if folder != "" {
		finalPublicID = folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Signature is sha1 over the sorted non-file params plus the secret.
	signedParams := map[string]string{
		"public_id": finalPublicID,
		"timestamp": timestamp,
	}
	keys := make([]string, 0, len(signedParams))
	for k := range signedParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var toSign []string
	for _, k := range keys {
		toSign = append(toSign, k+"="+signedParams[k])
	}
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(strings.Join(toSign, "&")+apiSecret)))

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+payload)
	form.Add("api_key", apiKey)
	form.Add("public_id", finalPublicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.PostForm(endpoint, form)
	if err != nil {
		fmt.Printf("ERROR: Cloudinary upload failed: %v\n", err)
		return map[string]string{"url": ""}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("ERROR: Cloudinary upload status %d: %s\n", resp.StatusCode, string(body))
		return map[string]string{"url": ""}
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("ERROR: Could not parse Cloudinary response: %v\n", err)
		return map[string]string{"url": ""}
	}
	if result.SecureURL != "" {
		return map[string]string{"url": result.SecureURL}
	}
	return map[string]string{"url": result.URL}
}
