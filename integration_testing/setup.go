package integration_testing

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/liftstats/internal"
	"github.com/2beens/liftstats/internal/config"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

const testMuscleMapping = `{
  "exercises": {
    "Bench Press (Barbell)": {"primary": ["Chest"], "secondary": ["Triceps"]},
    "Squat (Barbell)": {"primary": ["Legs"]},
    "Deadlift (Barbell)": {"primary": ["Back"], "secondary": ["Legs"]}
  },
  "radarGroups": ["Chest", "Back", "Legs", "Triceps"],
  "muscleAliases": {}
}`

const testWorkoutsCSV = `title,start_time,end_time,description,exercise_title,set_index,weight_lbs,reps
Push Day,"5 Feb 2024, 10:00","5 Feb 2024, 11:00",,Bench Press (Barbell),0,185,8
Push Day,"5 Feb 2024, 10:00","5 Feb 2024, 11:00",,Bench Press (Barbell),1,205,5
Leg Day,"7 Feb 2024, 10:00","7 Feb 2024, 11:10",,Squat (Barbell),0,225,5
Pull Day,"9 Feb 2024, 10:00","9 Feb 2024, 11:05",,Deadlift (Barbell),0,315,3
`

func writeTestDataFiles() (mappingPath, csvPath string, err error) {
	dir, err := os.MkdirTemp("", "liftstats-integration")
	if err != nil {
		return "", "", fmt.Errorf("create temp data dir: %w", err)
	}
	mappingPath = filepath.Join(dir, "muscle_groups.json")
	if err := os.WriteFile(mappingPath, []byte(testMuscleMapping), 0o600); err != nil {
		return "", "", fmt.Errorf("write muscle mapping: %w", err)
	}
	csvPath = filepath.Join(dir, "workouts.csv")
	if err := os.WriteFile(csvPath, []byte(testWorkoutsCSV), 0o600); err != nil {
		return "", "", fmt.Errorf("write workouts csv: %w", err)
	}
	return mappingPath, csvPath, nil
}

func getTestConfig(redisPort, mappingPath, csvPath string) *config.Config {
	return &config.Config{
		Host:              serverHost,
		Port:              serverPort,
		RedisHost:         "localhost",
		RedisPort:         redisPort,
		WorkoutsCSVPath:   csvPath,
		MuscleMappingPath: mappingPath,
		// unreachable on purpose, the assistant is not under test here
		ChatBaseURL:                "http://localhost:1",
		ChatModel:                  "test-model",
		ChatTimeoutSeconds:         1,
		ChatMaxRetries:             0,
		ChatContextCacheTTLSeconds: 60,
		ChatRateLimitAllowedPerMin: 100,
	}
}

func redisSetup(pool *dockertest.Pool) (string, func(), error) {
	redisResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", nil, fmt.Errorf("run redis: %s", err)
	}

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, func() {
		redisResource.Close()
	}, nil
}

func serverSetup(ctx context.Context) (*internal.Server, func(), error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, fmt.Errorf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = pool.Client.Ping(); err != nil {
		return nil, nil, fmt.Errorf("could not ping dockertest pool: %s", err)
	}

	redisPort, redisCleanup, err := redisSetup(pool)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup redis: %s", err.Error())
	}

	mappingPath, csvPath, err := writeTestDataFiles()
	if err != nil {
		redisCleanup()
		return nil, nil, err
	}

	cfg := getTestConfig(redisPort, mappingPath, csvPath)
	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			ChatAPIKey:              "test",
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		redisCleanup()
		return nil, nil, err
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	if err := waitServerUp(5 * time.Second); err != nil {
		redisCleanup()
		server.GracefulShutdown()
		return nil, nil, err
	}

	return server, func() {
		redisCleanup()
		server.GracefulShutdown()
	}, nil
}

func waitServerUp(timeout time.Duration) error {
	req, err := http.NewRequest(http.MethodGet, serverEndpoint+"/", nil)
	if err != nil {
		return fmt.Errorf("create probe request: %w", err)
	}
	req.Header.Set("User-Agent", "test-agent")

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server not reachable at %s after %s", serverEndpoint, timeout)
}
