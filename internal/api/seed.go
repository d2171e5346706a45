package api

import (
	"time"

	"github.com/veldt/taskdeck/pkg/persist"
	"github.com/veldt/taskdeck/pkg/task"
)

// seedTitles are the sample tasks written on first run so the table has
// something to show before the user adds their own.
var seedTitles = []string{
	"Water the office plants before they stage a protest",
	"Reply to the email that has been marked unread for a week",
	"Renew the domain before someone else grabs it",
	"Back up the laptop to the external drive",
	"Book the dentist appointment you keep postponing",
	"Submit the expense report for the conference trip",
	"Return the library books stacked by the door",
	"Update the project readme with the new setup steps",
	"Cancel the free trial before it starts charging",
	"Fix the squeaky hinge on the kitchen cabinet",
	"Prepare slides for Monday's status meeting",
	"Rotate the API keys on the staging environment",
	"Call the landlord about the radiator",
	"Write the retro notes while they are still fresh",
	"Clean out the downloads folder",
	"Send the birthday card before it becomes a belated one",
	"Review the open pull requests from last sprint",
	"Defrost the freezer",
	"Order replacement filters for the air purifier",
	"Draft the quarterly goals document",
	"Schedule the car service",
	"Archive last year's tax paperwork",
	"Test the restore path of the backups for once",
	"Plan the team offsite agenda",
	"Unsubscribe from the newsletters you never read",
	"Patch the wobbly shelf in the hallway",
	"Migrate the blog off the deprecated platform",
	"Refill the emergency kit batteries",
	"Sort the photo library from the summer trip",
	"Follow up on the insurance claim",
	"Replace the bike's worn brake pads",
	"Document the deployment runbook",
	"Get the winter tires out of storage",
	"Audit the password manager for reused entries",
	"Print and frame the picture for the living room",
	"Research flights for the spring holiday",
	"Take the donation bags to the charity shop",
	"Descale the coffee machine",
	"Finish the online course before access expires",
	"Label the moving boxes in the basement",
	"Set up the monitoring alert for disk usage",
	"Re-pot the basil before it gives up",
	"Reconcile the shared household spreadsheet",
	"Collect the parcel from the pickup point",
	"Swap the smoke detector batteries",
	"Outline the talk proposal for the meetup",
	"Tidy the cable drawer of shame",
	"Register for the half marathon",
	"Review the phone plan before renewal",
	"Sharpen the kitchen knives",
}

const day = 24 * time.Hour

// SeedIfEmpty populates an empty store with sample tasks spread across the
// buckets: the first ten hover around overdue, the next thirty land within
// a few days, the rest stretch out for weeks. Returns how many were written.
func SeedIfEmpty(store persist.Persistor, now time.Time) (int, error) {
	existing, err := store.Load()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	ts := make([]task.ToDo, len(seedTitles))
	for i, title := range seedTitles {
		var deadline time.Time
		switch {
		case i < 10:
			deadline = now.Add(-day * time.Duration(i%5))
		case i < 40:
			deadline = now.Add(day * time.Duration(i%3))
		default:
			deadline = now.Add(day * time.Duration(i%50))
		}
		ts[i] = task.ToDo{
			ID:       i + 1,
			Text:     title,
			Deadline: deadline,
			Done:     i%2 == 0,
		}
	}
	if err := store.Save(ts); err != nil {
		return 0, err
	}
	return len(ts), nil
}
