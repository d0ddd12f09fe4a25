package seed

import (
	"fmt"
	"log"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumMessages int
	MaxDays     int
	ShouldClean bool
	SkipBcrypt  bool
	RandSeed    int64
}

// Seed populates the database with test data: users, messages, a follow
// graph, and likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d messages...", opts.NumUsers, opts.NumMessages)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d test users created", len(users))

	messages := make([]*models.Message, 0, opts.NumMessages)
	for i := 0; i < opts.NumMessages; i++ {
		author := users[f.rand.Intn(len(users))]
		message, err := f.CreateMessage(author)
		if err != nil {
			return fmt.Errorf("failed to create messages: %w", err)
		}
		messages = append(messages, message)
	}
	log.Printf("%d test messages created", len(messages))

	follows, err := createFollowGraph(f, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("%d follow edges created", follows)

	likes, err := createLikes(f, users, messages)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("%d likes created", likes)

	log.Println("Database seeding complete")
	return nil
}

// createFollowGraph gives each user a handful of random follows. A user
// never follows the same account twice; self-follows are skipped to keep
// the demo data looking natural.
func createFollowGraph(f *Factory, users []*models.User) (int, error) {
	created := 0
	for _, follower := range users {
		seen := map[uint]bool{follower.ID: true}
		wanted := f.rand.Intn(len(users))
		for i := 0; i < wanted; i++ {
			followed := users[f.rand.Intn(len(users))]
			if seen[followed.ID] {
				continue
			}
			seen[followed.ID] = true
			if err := f.CreateFollow(follower, followed); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// createLikes hands out up to two likes per message, deduplicated per
// user.
func createLikes(f *Factory, users []*models.User, messages []*models.Message) (int, error) {
	created := 0
	for _, message := range messages {
		seen := map[uint]bool{}
		wanted := f.rand.Intn(3)
		for i := 0; i < wanted; i++ {
			user := users[f.rand.Intn(len(users))]
			if seen[user.ID] {
				continue
			}
			seen[user.ID] = true
			if err := f.CreateLike(user, message); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// clearData removes all seeded rows in dependency order.
func clearData(db *gorm.DB) error {
	for _, table := range []string{"likes", "follows", "messages", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
