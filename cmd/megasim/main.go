package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/megastones/internal/bootstrap"
	"github.com/KirkDiggler/megastones/internal/catalog"
	"github.com/KirkDiggler/megastones/internal/config"
	"github.com/KirkDiggler/megastones/internal/diagnostics"
	"github.com/KirkDiggler/megastones/internal/domain/creature"
	"github.com/KirkDiggler/megastones/internal/domain/shared"
	"github.com/KirkDiggler/megastones/internal/effects"
	megaerr "github.com/KirkDiggler/megastones/internal/errors"
	"github.com/KirkDiggler/megastones/internal/fusion"
	"github.com/KirkDiggler/megastones/internal/icons"
	"github.com/KirkDiggler/megastones/internal/registry"
	"github.com/KirkDiggler/megastones/internal/repositories/bag"
	"github.com/KirkDiggler/megastones/internal/repositories/items"
	"github.com/KirkDiggler/megastones/internal/repositories/messages"
	"github.com/KirkDiggler/megastones/internal/repositories/party"
	"github.com/KirkDiggler/megastones/internal/services/autoequip"
	"github.com/KirkDiggler/megastones/internal/uuid"
)

// adapters is the host side the engine talks to
type adapters struct {
	items items.Store
	text  messages.Catalog
	bag   bag.Depositor
	party party.Repository
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sess, err := loadSession(cfg.Harness.SessionPath)
	if err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}

	cat, err := catalog.LoadWithExtension(cfg.Engine.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load stone catalog: %v", err)
	}

	speciesTable, err := sess.speciesTable()
	if err != nil {
		log.Fatalf("Invalid species table: %v", err)
	}

	sink := diagnostics.NewFileSink(cfg.Engine.LogDir)
	sink.Boot("megasim starting: %d stones, %d species, %d party members", len(cat.Tokens()), speciesTable.Len(), len(sess.Party))

	ctx := context.Background()

	var redisClient *redis.Client
	host := inMemoryAdapters(sess, cfg.Harness.OwnerID)
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)
		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory adapters")
		} else {
			redisClient = redis.NewClient(opts)
			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory adapters")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				host = redisAdapters(ctx, redisClient, sess, cfg.Harness.OwnerID)
				log.Println("Using Redis for persistence")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory adapters")
	}
	defer func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}
	}()

	existing, err := host.party.ListByOwner(ctx, cfg.Harness.OwnerID)
	if err != nil {
		log.Fatalf("Failed to read party: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Party for %s already saved (%d members), not seeding", cfg.Harness.OwnerID, len(existing))
	} else {
		for _, m := range sess.Party {
			if err := host.party.Create(ctx, m.creature(cfg.Harness.OwnerID)); err != nil {
				log.Fatalf("Failed to seed party member %s: %v", m.Name, err)
			}
		}
	}

	codec := fusion.NewCodec(speciesTable)
	registrar := registry.New(&registry.Config{StartID: cfg.Engine.StartID, Sink: sink})
	policy := autoequip.New(&autoequip.Config{
		Catalog:    cat,
		Codec:      codec,
		IDs:        registrar,
		Depositors: []bag.Depositor{host.bag, bag.NewReceiver(host.bag, sink)},
		Sink:       sink,
	})
	engine := bootstrap.New(&bootstrap.Config{
		Catalog:   cat,
		Registrar: registrar,
		AutoEquip: policy,
		Icons:     &icons.Installer{GameRoot: cfg.Assets.GameRoot, ModDir: cfg.Assets.ModDir, Sink: sink},
		Party:     host.party,
		OwnerID:   cfg.Harness.OwnerID,
		Sink:      sink,
	})

	// The first frame runs before the host has loaded its item data
	engine.Tick(ctx)
	engine.AttachHost(host.items, host.text)
	engine.AfterDataLoad(ctx)
	for i := 1; i < cfg.Harness.Ticks; i++ {
		engine.Tick(ctx)
	}

	members, err := host.party.ListByOwner(ctx, cfg.Harness.OwnerID)
	if err != nil {
		log.Fatalf("Failed to list party: %v", err)
	}
	resolver := effects.NewResolver(&effects.ResolverConfig{Catalog: cat, Codec: codec, IDs: registrar})
	printParty(os.Stdout, members, resolver)
}

func inMemoryAdapters(sess *session, ownerID string) *adapters {
	return &adapters{
		items: items.NewInMemoryStore(sess.itemDefinitions()...),
		text:  messages.NewInMemoryCatalog(),
		bag:   bag.NewInMemoryBag(),
		party: party.NewInMemoryRepository(&uuid.SequenceGenerator{Prefix: ownerID}),
	}
}

func redisAdapters(ctx context.Context, client *redis.Client, sess *session, ownerID string) *adapters {
	store := items.NewRedisStore(client)
	for _, def := range sess.itemDefinitions() {
		if err := store.Register(ctx, def); err != nil && !megaerr.IsAlreadyExists(err) {
			log.Printf("Seeding item %s: %v", def.Token, err)
		}
	}
	return &adapters{
		items: store,
		text:  messages.NewRedisCatalog(client),
		bag:   bag.NewRedisBag(client, ownerID),
		party: party.NewRedisRepository(&party.RedisRepoConfig{Client: client}),
	}
}

func printParty(w io.Writer, members []*creature.Creature, resolver *effects.Resolver) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSPECIES\tITEM\tMEGA\tTYPES\tABILITY\tSTATS")
	for _, m := range members {
		c := effects.Wrap(m, resolver)
		held := resolver.Normalize(m.Item)
		item := "-"
		if !held.Empty() {
			item = held.Token
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\t%s\t%s\n",
			m.DisplayName(), m.Species, item, c.IsMegaActive(),
			joinTypes(c.Types()), c.AbilityID(), formatStats(c.BaseStats()))
	}
	_ = tw.Flush()
}

func joinTypes(types []shared.ElementType) string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return strings.Join(out, "/")
}

func formatStats(stats shared.StatSet) string {
	parts := make([]string, 0, len(shared.Stats))
	for _, stat := range shared.Stats {
		parts = append(parts, fmt.Sprintf("%d", stats[stat]))
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, "/"), stats.Total())
}
