// Package cleanup keeps the shutdown jobs of long lived resources such as
// database pools.
package cleanup

import (
	"log"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs newest first and forgets them, so a second
// call is a no-op. It returns the number of failed jobs.
func CleanUp() int {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()

	failed := 0
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		log.Printf("Cleanup job %s started...", j.Name)
		if err := j.F(); err != nil {
			failed++
			log.Printf("Job %s finished with error: %v", j.Name, err)
			continue
		}
		log.Printf("Job %s done", j.Name)
	}
	return failed
}
