package db

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/aalug/go-gin-job-board/pkg/utils"
	"github.com/bxcodec/faker/v3"
	"github.com/rs/zerolog/log"
)

var seedJobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance}

// LoadTestData fills the database with companies, jobs, users and
// conversations
func (store *MongoStore) LoadTestData(ctx context.Context) {
	var wg sync.WaitGroup
	nOfJobsCreated := int32(0)
	jobTitles := append(utils.GenerateEngineerJobs(), utils.GenerateDeveloperJobs()...)

	// create fake companies
	for i := 0; i < 3; i++ {
		for _, category := range utils.Categories {
			wg.Add(1)

			go func(category string) {
				defer wg.Done()

				company, err := store.CreateCompany(ctx, CreateCompanyParams{
					Name:         faker.DomainName(),
					Industry:     category,
					Address:      utils.RandomElement(utils.Locations),
					Website:      "https://" + faker.DomainName(),
					ContactEmail: faker.Email(),
				})
				if err != nil {
					log.Error().Err(err).Msg("cannot create company")
					return
				}

				// create jobs
				for j := 0; j < 3; j++ {
					title := utils.RandomElement(jobTitles)
					salaryMin := utils.RandomFloat(1000, 3000)
					salaryMax := salaryMin + utils.RandomFloat(0, 2000)
					experience := int(utils.RandomInt(0, 8))

					_, err := store.CreateJob(ctx, CreateJobParams{
						Title:          title,
						CompanyID:      company.ID,
						Description:    title + " " + faker.Paragraph(),
						EmploymentType: utils.RandomElement(seedJobTypes),
						MinExperience:  &experience,
						SalaryMin:      &salaryMin,
						SalaryMax:      &salaryMax,
						Status:         JobStatusOpen,
						City:           utils.RandomElement(utils.Locations),
						Address:        faker.Sentence(),
						Category:       category,
					})
					if err != nil {
						log.Error().Err(err).Msg("cannot create job")
						continue
					}
					atomic.AddInt32(&nOfJobsCreated, 1)
				}
			}(category)
		}
	}

	wg.Wait()
	log.Info().Int32("jobs", nOfJobsCreated).Msg("created test jobs")

	store.loadTestUsers(ctx)
}

func (store *MongoStore) loadTestUsers(ctx context.Context) {
	users := make([]User, 0, 5)
	for i := 0; i < 5; i++ {
		user, err := store.CreateUser(ctx, CreateUserParams{
			Email: utils.RandomEmail(),
			Name:  faker.Name(),
			Role:  "JOB_SEEKER",
		})
		if err != nil {
			log.Error().Err(err).Msg("cannot create user")
			continue
		}
		users = append(users, user)

		_, err = store.CreateJobSeekerProfile(ctx, CreateJobSeekerProfileParams{
			UserID:            user.ID,
			FullName:          user.Name,
			ProfessionalTitle: utils.RandomElement(utils.GenerateDeveloperJobs()),
			Summary:           faker.Paragraph(),
		})
		if err != nil {
			log.Error().Err(err).Msg("cannot create job seeker profile")
		}
	}

	// every user talks to the next one
	for i := 1; i < len(users); i++ {
		_, err := store.CreateChatMessage(ctx, CreateChatMessageParams{
			SenderID:    users[i-1].ID,
			RecipientID: users[i].ID,
			Content:     faker.Sentence(),
		})
		if err != nil {
			log.Error().Err(err).Msg("cannot create chat message")
		}
	}

	log.Info().Int("users", len(users)).Msg("created test users")
}
