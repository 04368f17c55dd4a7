package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/FrenchMajesty/polyglot-support/clients/groq"
	"github.com/FrenchMajesty/polyglot-support/detector"
	"github.com/FrenchMajesty/polyglot-support/support"
)

// demoQueries exercise the pipeline across four languages
var demoQueries = []string{
	"¿Cómo puedo cambiar mi contraseña?",
	"मेरा ऑर्डर कहाँ है?",
	"Le produit est défectueux",
	"Quero alterar minha senha.",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading the environment directly")
	}

	apiKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	if apiKey == "" {
		fmt.Println("ERROR: GROQ_API_KEY is not set.")
		fmt.Println("Get a free API key at https://console.groq.com/keys and put it in .env")
		os.Exit(1)
	}

	ctx := context.Background()

	client := groq.NewClient(apiKey)
	model := client.SelectActiveModel(ctx)

	pipeline, err := support.NewPipeline(support.Config{
		CompletionClient: support.NewGroqCompletionClient(client),
		Detector:         detector.New(),
	})
	if err != nil {
		log.Fatal(err)
	}

	printBanner(model)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit":
			fmt.Println("\nGoodbye!")
			return
		case "metrics":
			printSummary(pipeline.Metrics())
		case "test":
			fmt.Println("\nRunning demo queries...")
			for _, query := range demoQueries {
				printResult(pipeline.Process(ctx, query))
			}
		default:
			printResult(pipeline.Process(ctx, input))
		}
	}
}

func printBanner(model groq.ModelName) {
	fmt.Println(strings.Repeat("═", 70))
	fmt.Println("  Real-Time Multilingual Support Query Handler")
	fmt.Printf("  Model: %s\n", model)
	fmt.Println(strings.Repeat("═", 70))
	fmt.Println("Commands:")
	fmt.Println("  • Type a customer query in any language")
	fmt.Println("  • 'metrics' - view session statistics")
	fmt.Println("  • 'test'    - run the demo query set")
	fmt.Println("  • 'exit'    - quit")
}

func printResult(result *support.QueryResult) {
	fmt.Println("\n" + strings.Repeat("─", 70))
	fmt.Printf("Detected Language: %s\n", result.Language)
	fmt.Printf("\nEnglish Translation (confidence %.1f%%):\n", result.Confidence)
	printIndented(result.English)
	fmt.Println("\nSupport Response:")
	printIndented(result.Response)
	fmt.Printf("\nTotal Response Time: %.2fs\n", result.ResponseTime)
	fmt.Println(strings.Repeat("─", 70))
}

func printIndented(text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func printSummary(metrics *support.Metrics) {
	summary, err := metrics.Summarize()
	if err != nil {
		fmt.Println("\nNo queries processed yet.")
		return
	}

	fmt.Println("\n──── Translation Metrics Summary ────")
	fmt.Printf("Total Queries: %d\n", summary.TotalQueries)
	fmt.Printf("Session Duration: %ds\n", int(summary.SessionDuration.Seconds()))
	fmt.Println("Language Distribution:")
	for _, lc := range summary.Languages {
		fmt.Printf("  • %s: %d queries\n", lc.Language, lc.Count)
	}
	fmt.Printf("Avg Translation Confidence: %.1f%%\n", summary.AvgConfidence)
	fmt.Printf("Avg Response Time: %.2fs\n", summary.AvgResponseTime)
}
