package routine

// Messages emitted by the transitions.
const (
	MsgAirAlarm      = "Ugh, another air alarm tonight... Guess I have to go to the shelter now."
	MsgStillSleeping = "Zzz..."
	MsgWokeAwful     = "Gosh, I feel horrible. Was I sleeping or was someone beating me up?"
	MsgWokeRefreshed = "Rise and shine!"
	MsgNapHungry     = "What a nice nap! Now I'm hungry though..."
	MsgNapSupper     = "That was a good nap. Time to supper now."
	MsgNapBackToWork = "Well, that was a good snooze. Let's get back to work!"

	MsgBreakfastDone = "That was some delicious breakfast! Time to work now..."
	MsgSupperDone    = "What a nice supper!"
	MsgTastyButTired = "That sure was tasty, but I'm still very tired. Time for some sleep."
	MsgMealDone      = "That was delicious! Let's get back to work."

	MsgRestHungry    = "I'm feeling pretty hungry. Let's eat something."
	MsgRestLostTrack = "Whoops, I had so much fun, it seems I forgot about time! I should really go to sleep now."
	SuffixRestTired  = " I'm tired though. Time to sleep."
	SuffixRestSupper = " It's time for supper now."
	SuffixBackToWork = " Let's get back to work!"

	MsgStudyHungry = "What a productive day. Although I'm very hungry now, let's eat something, shall we?"
	MsgStudySupper = "That was some good studying! Time to supper."
	MsgStudyLate   = "Whew, it's so late already! I'm going to bed now."
	MsgStudyTired  = "I've been studying for so long and I'm so tired... Guess I'll take a nap."
	MsgStudyFun    = "Studying is fun. Let's keep going."
	MsgStudyRest   = "That was some good studying! Time to rest now."

	MsgChoresHungry     = "Ugh, that's enough of these chores. All the work made me hungry too, let's eat something."
	MsgChoresSupper     = "That's enough chores for now. Let's have some supper."
	MsgChoresNoSleep    = "Just great. Seems like I don't have the time to go back to sleep anymore. Well, let's at least eat something."
	MsgAlarmOver        = "Thank God it ended quickly. I can go back to sleep now."
	MsgAlarmContinues   = "I really hope this air alarm will be over soon..."
	MsgChoresTired      = "I've been working for so long and I'm so tired... Guess I'll take a nap."
	MsgChoresFinished   = "Finally, I finished all the tedious work. Time to rest now."
	MsgChoresStillGoing = "Still working..."
)

// RestingPhrases are the flavor lines used while resting.
var RestingPhrases = [4]string{
	"Baldur's Gate 3 is such a good game!",
	"Music is so relaxing...",
	"Terry Pratchett really is the best fiction writer. What a great book!",
	"Doing Math Analysis also counts as resting, right?",
}

// flavor re-rolls a resting phrase on every call.
func (a *Agent) flavor() string {
	return RestingPhrases[a.rng.IntN(len(RestingPhrases))]
}
