package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"palaver/internal/config"
	"palaver/internal/content"
	"palaver/internal/storage"
	"palaver/internal/store"

	"go.uber.org/zap"
)

// palaver's core is the entity store; this binary opens it against the local
// database (seeding demo data on first run) and dumps the state, so the whole
// stack is runnable without a UI on top.
func run() error {
	renderMarkdown := flag.Bool("render", false, "Render message content as sanitized HTML")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	defer func() { _ = logger.Sync() }()

	kv, err := storage.NewBboltKV(cfg.DBFile)
	if err != nil {
		return err
	}
	defer func() { _ = kv.Close() }()

	st, err := store.New(store.Config{
		Storage: kv,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	if cu := st.CurrentUser(); cu != nil {
		fmt.Printf("current user: %s (%s, %s)\n", cu.Username, cu.Role, cu.Status)
	}

	for _, srv := range st.Servers() {
		fmt.Printf("%s %s — %d members\n", srv.Icon, srv.Name, len(srv.MemberIDs))

		channels := st.GetServerChannels(srv.ID)
		sort.SliceStable(channels, func(i, j int) bool {
			return channels[i].Position < channels[j].Position
		})
		for _, ch := range channels {
			fmt.Printf("  #%s (%s)\n", ch.Name, ch.Type)

			messages := st.GetChannelMessages(ch.ID)
			sort.SliceStable(messages, func(i, j int) bool {
				return messages[i].CreatedAt < messages[j].CreatedAt
			})
			for _, m := range messages {
				text := m.Content
				if *renderMarkdown {
					if text, err = content.Render(m.Content); err != nil {
						return err
					}
				}
				fmt.Printf("    %s\n", text)
				for _, r := range m.Reactions {
					fmt.Printf("      %s ×%d\n", r.Emoji, r.Count)
				}
			}
		}
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
