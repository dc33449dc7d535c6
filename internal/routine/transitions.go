package routine

// transitionFunc mutates the agent for one hour and picks the next state.
// It must not touch the active state itself; Accept does that.
type transitionFunc func(a *Agent, hour int) (message string, next State)

// transitions is the dispatch table keyed by the active state.
var transitions = map[State]transitionFunc{
	StateSleep:    sleepStep,
	StateEat:      eatStep,
	StateStudy:    studyStep,
	StateDoChores: doChoresStep,
	StateRest:     restStep,
}

// Weighted-branch probabilities and the bad-wake-up penalty.
const (
	pAirAlarm      = 0.10
	pWakeAwful     = 0.33
	pBackToWork    = 0.7
	pKeepStudying  = 0.7
	pAlarmOver     = 0.7
	pChoresToRest  = 0.33
	wakeAwfulDrain = 30
)

func sleepStep(a *Agent, hour int) (string, State) {
	a.addEnergy(a.uniformInt(5, 10))
	a.addHunger(a.uniformInt(1, 7))

	// Night and wake-up hours win over hunger.
	switch {
	case hour < 7:
		if a.chance(pAirAlarm) {
			return MsgAirAlarm, StateDoChores
		}
		return MsgStillSleeping, StateSleep
	case hour == 7:
		if a.chance(pWakeAwful) {
			a.addEnergy(-wakeAwfulDrain)
			return MsgWokeAwful, StateEat
		}
		return MsgWokeRefreshed, StateEat
	case a.hunger > starvingThreshold:
		return MsgNapHungry, StateEat
	case hour == 19:
		return MsgNapSupper, StateEat
	default:
		return MsgNapBackToWork, a.pick(StateDoChores, StateStudy)
	}
}

func eatStep(a *Agent, hour int) (string, State) {
	a.resetHunger()

	switch {
	case hour == 8:
		return MsgBreakfastDone, a.pick(StateStudy, StateDoChores)
	// Hunger was just reset, so this never fires. Kept as-is on purpose.
	case hour == 20 && a.hunger >= supperThreshold:
		return MsgSupperDone, a.pick(StateRest, StateStudy)
	case a.energy < exhaustedEnergy:
		return MsgTastyButTired, StateSleep
	default:
		return MsgMealDone, a.pick(StateStudy, StateDoChores)
	}
}

func restStep(a *Agent, hour int) (string, State) {
	a.addEnergy(a.uniformInt(1, 5))
	a.addHunger(a.uniformInt(1, 7))

	switch {
	case a.hunger > starvingThreshold:
		return MsgRestHungry, StateEat
	case hour == 0:
		if a.energy > 50 {
			return a.flavor(), StateRest
		}
		return a.flavor() + SuffixRestTired, StateSleep
	case hour == 1:
		return MsgRestLostTrack, StateRest
	// Announces supper but stays in Rest.
	case hour == 19 && a.hunger >= supperThreshold:
		return a.flavor() + SuffixRestSupper, StateRest
	default:
		if a.chance(pBackToWork) {
			return a.flavor() + SuffixBackToWork, a.pick(StateStudy, StateDoChores)
		}
		return a.flavor(), StateRest
	}
}

// work applies the energy and hunger cost of an hour of study or chores.
func (a *Agent) work() {
	a.addEnergy(-a.uniformInt(5, 10) * a.HungerModifier())
	a.addHunger(a.uniformInt(1, 7))
}

func studyStep(a *Agent, hour int) (string, State) {
	a.work()

	switch {
	case a.hunger > starvingThreshold:
		return MsgStudyHungry, StateEat
	case hour == 19 && a.hunger >= supperThreshold:
		return MsgStudySupper, StateEat
	case hour == 0:
		return MsgStudyLate, StateSleep
	case a.energy < exhaustedEnergy:
		return MsgStudyTired, StateSleep
	case a.chance(pKeepStudying):
		return MsgStudyFun, StateStudy
	default:
		return MsgStudyRest, StateRest
	}
}

func doChoresStep(a *Agent, hour int) (string, State) {
	a.work()

	switch {
	case a.hunger > starvingThreshold:
		return MsgChoresHungry, StateEat
	case hour == 19 && a.hunger >= supperThreshold:
		return MsgChoresSupper, StateEat
	case hour == 7:
		return MsgChoresNoSleep, StateEat
	case hour < 7:
		if a.chance(pAlarmOver) {
			return MsgAlarmOver, StateSleep
		}
		return MsgAlarmContinues, StateDoChores
	case a.energy < exhaustedEnergy:
		return MsgChoresTired, StateSleep
	case a.chance(pChoresToRest):
		return MsgChoresFinished, StateRest
	default:
		return MsgChoresStillGoing, StateDoChores
	}
}
