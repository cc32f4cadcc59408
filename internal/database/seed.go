package database

import (
	"BetGuide-Backend/internal/auth"
	"BetGuide-Backend/internal/config"
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// SeedData заполняет хранилище демонстрационным каталогом, если букмекеров еще нет,
// и создает учетную запись администратора из конфигурации.
func SeedData(ctx context.Context, storage repository.Storage, admin config.Admin, passwords *auth.PasswordService, log *zap.Logger) error {
	log.Info("starting data seeding")

	if err := seedAdmin(ctx, storage, admin, passwords, log); err != nil {
		return err
	}

	existing, err := storage.ListBookmakers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing bookmakers: %w", err)
	}
	if len(existing) > 0 {
		log.Info("bookmakers already exist, skipping catalog seeding", zap.Int("existing_count", len(existing)))
		return nil
	}

	bookmakers := sampleBookmakers()
	for _, b := range bookmakers {
		if err := storage.CreateBookmaker(ctx, b); err != nil {
			return fmt.Errorf("failed to seed bookmaker %s: %w", b.Slug, err)
		}
	}

	bonuses := sampleBonuses(bookmakers)
	for _, b := range bonuses {
		if err := storage.CreateBonus(ctx, b); err != nil {
			return fmt.Errorf("failed to seed bonus %q: %w", b.Title, err)
		}
	}

	posts := samplePosts()
	for _, p := range posts {
		if err := storage.CreateBlogPost(ctx, p); err != nil {
			return fmt.Errorf("failed to seed blog post %s: %w", p.Slug, err)
		}
	}

	log.Info("data seeding completed successfully",
		zap.Int("bookmakers_created", len(bookmakers)),
		zap.Int("bonuses_created", len(bonuses)),
		zap.Int("posts_created", len(posts)))
	return nil
}

func seedAdmin(ctx context.Context, storage repository.UserStorage, admin config.Admin, passwords *auth.PasswordService, log *zap.Logger) error {
	if admin.SeedUsername == "" || admin.SeedPassword == "" {
		return nil
	}

	_, err := storage.GetUserByUsername(ctx, admin.SeedUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := passwords.HashPassword(admin.SeedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &domain.User{Username: admin.SeedUsername, Password: hash}
	if err := storage.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("admin user created", zap.String("username", user.Username))
	return nil
}

func sampleBookmakers() []*domain.Bookmaker {
	type sample struct {
		name, slug, payout, minDeposit, established, license string
		overall, trust                                       float64
		cryptos, sports, pros, cons                          []string
		featured                                             bool
	}

	samples := []sample{
		{
			name: "Stake", slug: "stake", payout: "Instant", minDeposit: "$1", established: "2017", license: "Curacao",
			overall: 9.4, trust: 9.3,
			cryptos:  []string{"BTC", "ETH", "LTC", "USDT"},
			sports:   []string{"Football", "Tennis", "Basketball", "Esports"},
			pros:     []string{"Instant crypto withdrawals", "Deep esports markets"},
			cons:     []string{"No fiat in some regions"},
			featured: true,
		},
		{
			name: "BC.Game", slug: "bc-game", payout: "Under 1 hour", minDeposit: "$5", established: "2017", license: "Curacao",
			overall: 8.7, trust: 8.1,
			cryptos:  []string{"BTC", "ETH", "DOGE", "TRX"},
			sports:   []string{"Football", "Cricket", "MMA"},
			pros:     []string{"Large coin selection", "Frequent promotions"},
			cons:     []string{"Busy interface"},
			featured: true,
		},
		{
			name: "Cloudbet", slug: "cloudbet", payout: "1-24 hours", minDeposit: "$10", established: "2013", license: "Curacao",
			overall: 8.2, trust: 8.6,
			cryptos: []string{"BTC", "ETH", "USDC"},
			sports:  []string{"Football", "Basketball", "Ice Hockey"},
			pros:    []string{"High limits", "Long track record"},
			cons:    []string{"Fewer casino bonuses"},
		},
		{
			name: "Sportsbet.io", slug: "sportsbet-io", payout: "Under 1 hour", minDeposit: "$10", established: "2016", license: "Curacao",
			overall: 7.6, trust: 6.8,
			cryptos: []string{"BTC", "ETH", "USDT"},
			sports:  []string{"Football", "Tennis"},
			pros:    []string{"Fast live betting"},
			cons:    []string{"Limited support hours"},
		},
	}

	out := make([]*domain.Bookmaker, 0, len(samples))
	for i, s := range samples {
		established, license := s.established, s.license
		out = append(out, &domain.Bookmaker{
			Name:            s.name,
			Slug:            s.slug,
			Logo:            "https://cdn.betguide.example/logos/" + s.slug + ".png",
			Description:     s.name + " crypto sportsbook review.",
			WebsiteURL:      "https://" + s.slug + ".example.com",
			AffiliateURL:    "https://" + s.slug + ".example.com/?ref=betguide",
			OverallRating:   s.overall,
			TrustScore:      s.trust,
			OddsRating:      s.overall - 0.3,
			BonusRating:     s.overall - 0.5,
			UIRating:        s.overall,
			SupportRating:   s.overall - 0.4,
			TrustScoreLabel: domain.TrustLabel(s.trust),
			PayoutSpeed:     s.payout,
			MinDeposit:      s.minDeposit,
			MaxPayout:       "No limit",
			Established:     &established,
			License:         &license,
			CryptosAccepted: datatypes.JSONSlice[string](s.cryptos),
			SportsCovered:   datatypes.JSONSlice[string](s.sports),
			Pros:            datatypes.JSONSlice[string](s.pros),
			Cons:            datatypes.JSONSlice[string](s.cons),
			Featured:        s.featured,
			Rank:            i + 1,
			IsActive:        true,
		})
	}
	return out
}

func sampleBonuses(bookmakers []*domain.Bookmaker) []*domain.Bonus {
	out := make([]*domain.Bonus, 0, len(bookmakers))
	for _, b := range bookmakers {
		wager, minDeposit := "40x", b.MinDeposit
		out = append(out, &domain.Bonus{
			BookmakerID:      b.ID,
			Title:            b.Name + " Welcome Bonus",
			Description:      "Deposit bonus for new " + b.Name + " players.",
			BonusType:        domain.DefaultBonusType,
			Value:            "100% up to $500",
			WagerRequirement: &wager,
			MinDeposit:       &minDeposit,
			IsActive:         true,
		})
	}
	return out
}

func samplePosts() []*domain.BlogPost {
	published := "2024-05-01"
	return []*domain.BlogPost{
		{
			Title:       "How to Choose a Crypto Sportsbook",
			Slug:        "how-to-choose-a-crypto-sportsbook",
			Excerpt:     "Licensing, payout speed and coin support explained.",
			Content:     "<h2>Start with the license</h2><p>Check who regulates the operator before depositing.</p>",
			Category:    domain.DefaultBlogCategory,
			Tags:        datatypes.JSONSlice[string]{"beginners", "crypto"},
			PublishedAt: &published,
			IsPublished: true,
		},
		{
			Title:       "Understanding Wagering Requirements",
			Slug:        "understanding-wagering-requirements",
			Excerpt:     "What 40x really means for your bonus.",
			Content:     "<p>A wagering requirement is the amount you must bet before withdrawing bonus funds.</p>",
			Category:    "bonuses",
			Tags:        datatypes.JSONSlice[string]{"bonuses"},
			IsPublished: false,
		},
	}
}
