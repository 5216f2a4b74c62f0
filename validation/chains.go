package validation

import (
	"fmt"
	"time"

	"github.com/sessionpulse/ratebot-go/models"
)

// feedbackWindowDays bounds how old a session may be before the bot stops
// accepting ratings or feedback for it.
const feedbackWindowDays = 30

// Result is the outcome of a rule chain: either valid, or the first
// violated slot plus the message to re-prompt the user with.
type Result struct {
	Valid        bool
	ViolatedSlot string
	Message      string
}

func valid() Result { return Result{Valid: true} }

func violated(slot, message string) Result {
	return Result{ViolatedSlot: slot, Message: message}
}

// CheckRating validates the RateSession slots. Checks run in a fixed
// order and the first failure wins; absent slots pass their checks so the
// chain can run on every turn while slots fill in one at a time.
func CheckRating(slots models.Slots, today time.Time) Result {
	location, hasLocation := slots.Get(models.SlotSessionLocation)
	date, hasDate := slots.Get(models.SlotSessionDate)
	rawScore, hasScore := slots.Get(models.SlotSessionScore)

	if hasLocation && !IsValidLocation(location) {
		return violated(models.SlotSessionLocation,
			fmt.Sprintf("%s is not a valid session location.  Which City did this event take place in?  Please can you try a different location?", location))
	}
	if hasDate && !IsValidDate(date) {
		return violated(models.SlotSessionDate,
			fmt.Sprintf("%s isn't a valid date.  Please enter a date in day month year format, or month day year format if you prefer.", date))
	}
	if hasScore {
		score, ok := ParseScore(rawScore)
		if !ok || !IsValidScore(score) {
			return violated(models.SlotSessionScore,
				fmt.Sprintf("%s is not a valid session score.  Please enter a score between 1 and 5", rawScore))
		}
	}
	if hasDate && IsFutureDate(date, today) {
		return violated(models.SlotSessionDate,
			fmt.Sprintf("%s is in the future.  Please enter a date in the past, or today's date", date))
	}
	if hasDate && !WithinLastNDays(date, today, feedbackWindowDays) {
		return violated(models.SlotSessionDate,
			fmt.Sprintf("%s is more than 30 days ago and I only record for sessions in the last 30 days.  Please enter a more recent date or leave a rating more promptly next time.", date))
	}
	return valid()
}

// CheckFeedback validates the ProvideFeedback slots. Same ordering rules
// as CheckRating; the comments check is deliberately last and only fires
// once the session id, location and date are all present, so comments are
// the final slot solicited.
func CheckFeedback(slots models.Slots, today time.Time) Result {
	_, hasID := slots.Get(models.SlotSessionID)
	location, hasLocation := slots.Get(models.SlotSessionLocation)
	date, hasDate := slots.Get(models.SlotSessionDate)
	comments, _ := slots.Get(models.SlotSessionComments)

	if hasLocation && !IsValidLocation(location) {
		return violated(models.SlotSessionLocation,
			fmt.Sprintf("%s is not a valid session location.  Which City did this event take place in?  Please can you try a different location?", location))
	}
	if hasDate && !IsValidDate(date) {
		return violated(models.SlotSessionDate,
			fmt.Sprintf("%s isn't a valid date.  Please enter a date in day month year format, or month day year format if you prefer.", date))
	}
	if hasDate && IsFutureDate(date, today) {
		return violated(models.SlotSessionDate,
			fmt.Sprintf("%s is in the future.  Please enter a date in the past, or today's date", date))
	}
	if hasDate && !WithinLastNDays(date, today, feedbackWindowDays) {
		return violated(models.SlotSessionDate,
			fmt.Sprintf("%s is more than 30 days ago and I only record feedback for sessions in the last 30 days.  Please enter a more recent date or leave your feedback more promptly next time.", date))
	}
	if hasID && hasLocation && hasDate && !IsValidComments(comments) {
		return violated(models.SlotSessionComments,
			"I didn't get your feedback. What did you think of the session?")
	}
	return valid()
}

// CheckTesting validates the Testing slots: target membership is the only
// check.
func CheckTesting(slots models.Slots) Result {
	target, hasTarget := slots.Get(models.SlotTestTarget)
	if hasTarget && !IsValidTestTarget(target) {
		return violated(models.SlotTestTarget,
			fmt.Sprintf("%s is not a valid test target.  Try A, B or C?", target))
	}
	return valid()
}
