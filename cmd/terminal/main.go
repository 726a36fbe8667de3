// Command terminal runs a headless role terminal against the order
// service: it prints the role's visible orders whenever they change and
// accepts status-change commands on standard input.
//
// Environment: SERVER_URL, WS_URL, ROLE (depot or delivery), RESYNC
// (set to 1 to reload the snapshot after every reconnect).
//
// Input commands:
//
//	<pieza>      apply the role's single move for that order (depot)
//	ok <pieza>   mark delivered (delivery)
//	no <pieza>   mark not delivered (delivery)
//	list         reprint the current orders
//	quit         exit
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tracking/internal/client"
	"tracking/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	_ = godotenv.Load(".env")

	role, err := order.ParseRole(envOrDefault("ROLE", "depot"))
	if err != nil {
		log.Fatalf("Invalid ROLE: %v", err)
	}

	cfg := client.Config{
		ServerURL:         envOrDefault("SERVER_URL", "http://localhost:8000"),
		WSURL:             envOrDefault("WS_URL", "ws://localhost:8000/ws"),
		Role:              role,
		ResyncOnReconnect: os.Getenv("RESYNC") == "1",
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	agent, err := client.NewAgent(cfg, printEntries, logger)
	if err != nil {
		log.Fatalf("Error creating agent: %v", err)
	}

	if err := agent.Start(context.Background()); err != nil {
		log.Fatalf("Error starting agent: %v", err)
	}
	defer agent.Stop()

	runInputLoop(agent)
}

func printEntries(entries []client.Entry) {
	fmt.Println("---- pedidos ----")
	if len(entries) == 0 {
		fmt.Println("(ninguno)")
	}
	for _, e := range entries {
		flag := ""
		if e.PosteRestante {
			flag = "  [poste restante]"
		}
		fmt.Printf("%-15s  guarda %-4s  %s%s\n", e.Pieza, e.Guarda, e.Status.String(), flag)
	}
	fmt.Println("-----------------")
}

func runInputLoop(agent *client.Agent) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "quit", "exit":
			return
		case "list":
			printEntries(agent.Entries())
		case "ok":
			if len(fields) == 2 {
				err = agent.Transition(fields[1], order.EntregadoAlCliente)
			}
		case "no":
			if len(fields) == 2 {
				err = agent.Transition(fields[1], order.NoEntregado)
			}
		default:
			err = agent.Advance(fields[0])
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
