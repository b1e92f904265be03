package scheduler

import (
	"fmt"
	"time"

	"quiz-platform-backend/internal/database/models"
	"quiz-platform-backend/internal/logger"
	"quiz-platform-backend/internal/repository"

	"github.com/robfig/cron"
)

// staleAfter is how long a quiz may go unattempted before the sweep nudges
// the user again
const staleAfter = 24 * time.Hour

const userPageSize = 200

// ReminderJob is the daily sweep that reminds users to retake quizzes they
// have not attempted recently. It reads results and writes notifications;
// it never touches the scoring write path.
type ReminderJob struct {
	userRepo         repository.UserRepositoryInterface
	resultRepo       repository.ResultRepositoryInterface
	quizRepo         repository.QuizRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	schedule         string
	cron             *cron.Cron
	log              *logger.Logger
}

// NewReminderJob creates a new reminder job with a cron schedule spec
func NewReminderJob(
	userRepo repository.UserRepositoryInterface,
	resultRepo repository.ResultRepositoryInterface,
	quizRepo repository.QuizRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
	schedule string,
) *ReminderJob {
	return &ReminderJob{
		userRepo:         userRepo,
		resultRepo:       resultRepo,
		quizRepo:         quizRepo,
		notificationRepo: notificationRepo,
		schedule:         schedule,
		cron:             cron.New(),
		log:              logger.New(),
	}
}

// Start registers the sweep with the cron runner and starts it
func (j *ReminderJob) Start() error {
	if err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}
	j.cron.Start()
	j.log.WithField("schedule", j.schedule).Info("reminder job started")
	return nil
}

// Stop stops the cron runner; a sweep already running finishes on its own
func (j *ReminderJob) Stop() {
	j.cron.Stop()
}

// Run executes one sweep over all users. Per-user failures are logged and
// skipped so one bad row cannot starve the rest of the sweep.
func (j *ReminderJob) Run() {
	now := time.Now()
	reminded := 0

	for offset := 0; ; offset += userPageSize {
		users, total, err := j.userRepo.GetAll(userPageSize, offset)
		if err != nil {
			j.log.WithField("error", err.Error()).Error("reminder sweep failed to list users")
			return
		}
		for i := range users {
			n, err := j.remindUser(&users[i], now)
			if err != nil {
				j.log.WithField("user_id", users[i].ID).
					WithField("error", err.Error()).
					Warn("reminder sweep skipped user")
				continue
			}
			reminded += n
		}
		if int64(offset+len(users)) >= total || len(users) == 0 {
			break
		}
	}

	j.log.WithField("notifications", reminded).Info("reminder sweep finished")
}

func (j *ReminderJob) remindUser(user *models.User, now time.Time) (int, error) {
	latest, err := j.resultRepo.GetLatestPerQuizByUser(user.ID)
	if err != nil {
		return 0, fmt.Errorf("latest results: %w", err)
	}

	created := 0
	for _, result := range latest {
		if now.Sub(result.CreatedAt) <= staleAfter {
			continue
		}
		quiz, err := j.quizRepo.GetByID(result.QuizID)
		if err != nil {
			// Quiz deleted since the attempt; nothing to remind about
			continue
		}
		notification := &models.Notification{
			UserID: user.ID,
			Text:   fmt.Sprintf("It's time to take the quiz '%s'!", quiz.Title),
		}
		if err := j.notificationRepo.Create(notification); err != nil {
			return created, fmt.Errorf("create notification: %w", err)
		}
		created++
	}
	return created, nil
}
