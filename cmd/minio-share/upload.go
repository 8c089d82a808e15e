package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qmuller/minio-share/internal/config"
	"github.com/qmuller/minio-share/internal/share"
	"github.com/qmuller/minio-share/internal/storage"
)

var (
	uploadName       string
	uploadTitle      string
	uploadExpiry     int
	uploadJSON       bool
	uploadInsecure   bool
	uploadConfigFile string
)

// uploadOutput is the JSON shape emitted in --json mode.
type uploadOutput struct {
	Success      bool   `json:"success"`
	ObjectName   string `json:"object_name"`
	Bucket       string `json:"bucket"`
	PresignedURL string `json:"presigned_url"`
	ConsoleURL   string `json:"console_url"`
	ExpiryDays   int    `json:"expiry_days"`
}

var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Upload a file and print shareable links",
	Long: `Upload a local file to the configured MinIO bucket and print a presigned
download URL. With --json, a structured result including the console preview
URL is printed instead.

Configuration is read from environment variables:
  - MINIO_API_URL      (e.g. https://minio.example.com)
  - MINIO_CONSOLE_URL  (e.g. https://console.example.com)
  - MINIO_ACCESS_KEY
  - MINIO_SECRET_KEY
  - MINIO_BUCKET

A YAML file passed with --config overrides the environment.

Example usage:
  # Upload with the original filename as the object name
  minio-share upload report.pdf

  # Upload under a sanitized title, links valid for 30 days
  minio-share upload -t "Quarterly Report: Q3/2026" -e 30 report.pdf
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if uploadExpiry <= 0 {
			fmt.Fprintf(os.Stderr, "Error: expiry must be a positive number of days, got %d\n", uploadExpiry)
			os.Exit(1)
		}

		cfg, err := config.Load(uploadConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		client, err := storage.NewMinioClient(storage.Options{
			Endpoint:  cfg.Endpoint,
			Secure:    cfg.Secure,
			Insecure:  uploadInsecure,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		result, err := share.Upload(context.Background(), client, cfg, share.Request{
			FilePath:   args[0],
			Name:       uploadName,
			Title:      uploadTitle,
			ExpiryDays: uploadExpiry,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if uploadJSON {
			out, err := json.MarshalIndent(uploadOutput{
				Success:      true,
				ObjectName:   result.ObjectKey,
				Bucket:       result.Bucket,
				PresignedURL: result.PresignedURL,
				ConsoleURL:   result.ConsoleURL,
				ExpiryDays:   result.ExpiryDays,
			}, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
		} else {
			fmt.Println(result.PresignedURL)
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVarP(&uploadName, "name", "n", "", "Object name in the bucket (default: filename)")
	uploadCmd.Flags().StringVarP(&uploadTitle, "title", "t", "", "Free-text title to sanitize into the object name (wins over --name)")
	uploadCmd.Flags().IntVarP(&uploadExpiry, "expiry", "e", 7, "Link expiry in days")
	uploadCmd.Flags().BoolVarP(&uploadJSON, "json", "j", false, "Output the result as JSON")
	uploadCmd.Flags().BoolVarP(&uploadInsecure, "insecure", "k", false, "Disable TLS certificate verification")
	uploadCmd.Flags().StringVar(&uploadConfigFile, "config", "", "Path to a YAML config file overriding the environment")
}
