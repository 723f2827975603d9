package content

import "github.com/krystalg80/The-Reddit-Mastermind/internal/types"

// Phrase tables for the template path. Every entry is a fmt template taking
// the topic (or both comparison sides) as %s arguments. Variants within a
// slice are interchangeable; the renderer picks one at random.

var titleTemplates = map[types.Intent]map[types.Tone][]string{
	types.IntentQuestion: {
		types.ToneProfessional: {
			"What is the industry consensus on %s?",
			"Seeking informed perspectives: %s",
			"How are teams currently approaching %s?",
		},
		types.ToneCasual: {
			"Anyone here tried %s?",
			"So... %s — worth it?",
			"Quick question about %s",
		},
		types.ToneFriendly: {
			"Would love your thoughts on %s!",
			"Hey everyone, curious about %s",
			"Can anyone help me out with %s?",
		},
		types.ToneTechnical: {
			"Technical question: %s",
			"What's the current state of %s?",
			"Looking for implementation details on %s",
		},
		types.ToneHumorous: {
			"Okay, someone explain %s like I'm five",
			"Am I the only one confused by %s?",
			"%s — genius or madness?",
		},
	},
	types.IntentDiscussion: {
		types.ToneProfessional: {
			"Discussion: the evolving landscape of %s",
			"Where do you see %s heading?",
			"An open conversation about %s",
		},
		types.ToneCasual: {
			"Let's talk about %s",
			"Hot take incoming: %s",
			"What's everyone's experience with %s?",
		},
		types.ToneFriendly: {
			"Would love to hear everyone's take on %s",
			"Let's share experiences with %s!",
			"Community discussion: %s",
		},
		types.ToneTechnical: {
			"Deep dive discussion: %s",
			"Architecture considerations around %s",
			"Trade-offs worth discussing: %s",
		},
		types.ToneHumorous: {
			"Unpopular opinions about %s, go",
			"%s discourse time, bring snacks",
			"Let's argue about %s (politely)",
		},
	},
	types.IntentAdvice: {
		types.ToneProfessional: {
			"Recommendations needed: %s",
			"Seeking guidance on %s",
			"What would you advise regarding %s?",
		},
		types.ToneCasual: {
			"Need some advice on %s",
			"Help me figure out %s",
			"What should I do about %s?",
		},
		types.ToneFriendly: {
			"Any advice on %s would be amazing!",
			"Friends, I need your wisdom on %s",
			"Looking for friendly advice: %s",
		},
		types.ToneTechnical: {
			"Best practices for %s?",
			"Advice wanted: optimal approach to %s",
			"How would you architect %s?",
		},
		types.ToneHumorous: {
			"Save me from myself: %s",
			"Before I do something dumb with %s...",
			"Adult supervision required: %s",
		},
	},
	types.IntentReview: {
		types.ToneProfessional: {
			"An honest assessment of %s",
			"Evaluating %s: my findings",
			"%s — a measured review",
		},
		types.ToneCasual: {
			"My honest take on %s",
			"Tried %s so you don't have to",
			"%s review after actually using it",
		},
		types.ToneFriendly: {
			"Sharing my experience with %s!",
			"My journey with %s so far",
			"A friendly review of %s",
		},
		types.ToneTechnical: {
			"In-depth review: %s",
			"Benchmarking %s: notes and numbers",
			"%s under the hood: a technical review",
		},
		types.ToneHumorous: {
			"I reviewed %s and lived to tell the tale",
			"%s: a dramatic reenactment",
			"Reviewing %s with zero chill",
		},
	},
}

var comparisonTitles = map[types.Tone][]string{
	types.ToneProfessional: {
		"%s or %s — which delivers better results?",
		"Comparing %s and %s: experiences welcome",
	},
	types.ToneCasual: {
		"%s or %s? Help me pick",
		"Torn between %s and %s",
	},
	types.ToneFriendly: {
		"Team %s or team %s? Would love input!",
		"Help a friend choose: %s or %s?",
	},
	types.ToneTechnical: {
		"%s vs %s: real-world trade-offs?",
		"Benchmarks aside, %s or %s?",
	},
	types.ToneHumorous: {
		"%s vs %s: the ultimate showdown",
		"Cage match: %s against %s",
	},
}

var bodyOpeners = map[types.Tone][]string{
	types.ToneProfessional: {
		"I've been researching %s for a project and I'd value perspectives from people with hands-on experience.",
		"Our team has been evaluating %s recently, and the available material doesn't quite answer the practical questions.",
	},
	types.ToneCasual: {
		"So I've been going down a rabbit hole on %s lately and figured this was the place to ask.",
		"Been thinking about %s for a while now and I keep going back and forth.",
	},
	types.ToneFriendly: {
		"Hey everyone! I've been curious about %s and this community always has such helpful takes.",
		"Hope this is okay to post here — I've been exploring %s and would love to hear from you all.",
	},
	types.ToneTechnical: {
		"I've been digging into %s and want to sanity-check my understanding against people who've shipped with it.",
		"Context: evaluating %s for a production use case, and documentation only gets you so far.",
	},
	types.ToneHumorous: {
		"So %s has completely taken over my browser history and I need to talk about it.",
		"I told myself I'd spend ten minutes looking into %s. That was three hours ago.",
	},
}

var comparisonBodies = map[types.Tone][]string{
	types.ToneProfessional: {
		"I'm weighing %s against %s and the published comparisons all seem to have an agenda. Practical experience with either would help.",
	},
	types.ToneCasual: {
		"Basically stuck choosing between %s and %s. Everything I read contradicts the last thing I read.",
	},
	types.ToneFriendly: {
		"I keep flip-flopping between %s and %s and could really use some real stories from people who picked one!",
	},
	types.ToneTechnical: {
		"Evaluating %s against %s. Feature matrices are easy to find; failure modes and operational overhead are not.",
	},
	types.ToneHumorous: {
		"It's %s in one corner and %s in the other, and I've been standing in the middle for a week.",
	},
}

var expertiseLines = map[types.Tone][]string{
	types.ToneProfessional: {
		"For context, my background is in %s, so I'm comfortable with the fundamentals.",
		"I work primarily in %s, which shapes how I look at this.",
	},
	types.ToneCasual: {
		"For what it's worth I know my way around %s, just not this specifically.",
		"I mostly deal with %s day to day, so this is a bit outside my lane.",
	},
	types.ToneFriendly: {
		"A little about me: I spend most of my time with %s, so be gentle with the jargon!",
		"My background is in %s if that helps frame any answers.",
	},
	types.ToneTechnical: {
		"Background: %s, so feel free to go deep on specifics.",
		"I work in %s, so implementation-level answers are welcome.",
	},
	types.ToneHumorous: {
		"My qualifications: an unreasonable amount of time spent on %s.",
		"I do %s for a living, which apparently qualifies me for nothing here.",
	},
}

var bodyClosers = map[types.Tone][]string{
	types.ToneProfessional: {
		"Any insights from practitioners would be genuinely appreciated.",
		"Thanks in advance for any substantive responses.",
	},
	types.ToneCasual: {
		"Any takes appreciated, even the spicy ones.",
		"Cheers for any pointers.",
	},
	types.ToneFriendly: {
		"Thanks so much in advance, this community is the best!",
		"Really looking forward to hearing your stories!",
	},
	types.ToneTechnical: {
		"War stories and gotchas especially welcome.",
		"Links to write-ups or postmortems would be ideal.",
	},
	types.ToneHumorous: {
		"Wrong answers only. Kidding. Mostly.",
		"My sanity thanks you in advance.",
	},
}

var commentTemplates = map[types.Tone]map[CommentType][]string{
	types.ToneProfessional: {
		ShareExperience: {
			"We went through this evaluation last quarter. With %s, the deciding factor ended up being long-term maintainability rather than features.",
			"Having dealt with %s professionally, my main advice is to pilot it on a low-stakes project first.",
		},
		AddValue: {
			"One aspect of %s that rarely gets discussed is the total cost over time, not just the initial adoption effort.",
			"Worth adding: the ecosystem around %s matters more than the thing itself in most real deployments.",
		},
		AgreeAndExpand: {
			"This aligns with my experience. I'd add that %s rewards teams that invest in proper onboarding early.",
			"Agreed on all points. The one nuance I'd offer on %s is that results vary heavily with team size.",
		},
		AskFollowup: {
			"Interesting. May I ask what scale you're operating at? That tends to change the calculus on %s considerably.",
			"Could you share more about your constraints? Recommendations on %s differ a lot by context.",
		},
		ProvideTip: {
			"Practical tip: before committing to %s, document your success criteria. It keeps the evaluation honest.",
			"A small suggestion — keep a decision log while you evaluate %s. Future you will thank present you.",
		},
		RelatePersonal: {
			"I faced a similar decision around %s two years ago. The option I almost dismissed ended up being the right one.",
			"This mirrors a situation from my own work with %s. Happy to compare notes if useful.",
		},
	},
	types.ToneCasual: {
		ShareExperience: {
			"Been using %s for about six months now. Honestly? Better than I expected, with a couple annoying quirks.",
			"I tried %s last year. Bounced off it at first but it grew on me.",
		},
		AddValue: {
			"One thing nobody mentions about %s: the community around it is half the value.",
			"Small thing, but check the update cadence on %s before you commit. Saved me once.",
		},
		AgreeAndExpand: {
			"Yeah this. And honestly %s gets way easier once you stop fighting the defaults.",
			"Pretty much my experience too. %s just takes a few weeks to click.",
		},
		AskFollowup: {
			"Out of curiosity, what are you comparing %s against? Might change what I'd suggest.",
			"What's your budget situation? Kinda matters a lot with %s.",
		},
		ProvideTip: {
			"Pro tip: start small with %s. Everyone tries to do everything at once and burns out.",
			"If you do go with %s, the getting-started guides undersell the setup time. Plan for that.",
		},
		RelatePersonal: {
			"Man, I was in exactly this spot with %s a while back. Took me forever to just pick something.",
			"Same boat here honestly. %s decision paralysis is real.",
		},
	},
	types.ToneFriendly: {
		ShareExperience: {
			"I've been down this road with %s! Happy to share — the short version is it worked out great once I found my rhythm.",
			"Oh I can help here! Used %s for a good while and mostly loved it.",
		},
		AddValue: {
			"Just wanted to add that %s has a really welcoming community if you get stuck — don't be afraid to ask!",
			"Something that helped me with %s: there are some great free resources once you know where to look.",
		},
		AgreeAndExpand: {
			"Totally agree with this! And I'd gently add that %s is way less scary than it looks from the outside.",
			"Yes to all of this! My experience with %s was really similar.",
		},
		AskFollowup: {
			"Great question! Can I ask what you're hoping to get out of %s? Might help people give better answers!",
			"Curious — is this your first time looking at %s? No judgment either way!",
		},
		ProvideTip: {
			"Friendly tip: give %s at least two weeks before judging it. The first few days are the hardest!",
			"One thing that really helped me with %s was finding a buddy who'd done it before. Worth seeking out!",
		},
		RelatePersonal: {
			"I remember feeling exactly like this about %s! You're definitely not alone.",
			"Aww, this takes me back to my own %s journey. It gets better, promise!",
		},
	},
	types.ToneTechnical: {
		ShareExperience: {
			"Ran %s in production for 18 months. Key finding: the happy path is solid, the edge cases are where you'll spend your time.",
			"Deployed %s at my last job. Performance was fine; operational tooling was the weak spot.",
		},
		AddValue: {
			"Worth noting that %s behaves very differently under sustained load than in quick trials. Measure before committing.",
			"Addendum: check the migration story for %s. Getting in is easy, getting out is the real test.",
		},
		AgreeAndExpand: {
			"Correct. To expand: %s scales well horizontally but the vertical limits show up earlier than the docs imply.",
			"This matches my benchmarks. One addition on %s: tail latencies are the metric to watch, not averages.",
		},
		AskFollowup: {
			"What's your throughput requirement? Answers about %s below and above ~10x nominal load diverge sharply.",
			"Which version are you evaluating? %s changed substantially across recent releases.",
		},
		ProvideTip: {
			"Tip: instrument %s from day one. Retrofitting observability later costs far more.",
			"Concrete suggestion for %s: pin versions and read changelogs. Silent behavior changes are the main hazard.",
		},
		RelatePersonal: {
			"Had the same evaluation on my plate last year for %s. Ended up building a small proof of concept — highly recommend that route.",
			"I went through this exact exercise with %s. The spreadsheet comparison lied; the prototype didn't.",
		},
	},
	types.ToneHumorous: {
		ShareExperience: {
			"I have used %s. I have opinions. My therapist has heard all of them. Short version: it's actually decent.",
			"Veteran of the %s wars here. I have the scars and, weirdly, the fondness.",
		},
		AddValue: {
			"Fun fact nobody tells you about %s: the documentation was written by someone who clearly never ran it.",
			"Adding the forbidden knowledge about %s: it's 20%% the thing and 80%% everything around the thing.",
		},
		AgreeAndExpand: {
			"This person gets it. %s is a lifestyle, not a choice.",
			"Hard agree. %s broke me and rebuilt me into something stronger. Probably.",
		},
		AskFollowup: {
			"Important question: how much do you enjoy suffering? Asking for %s-related reasons.",
			"Quick follow-up — when you say you're considering %s, is that 'considering' or 'already bought it and seeking validation'?",
		},
		ProvideTip: {
			"Pro tip for %s: lower your expectations, then lower them again, then be pleasantly surprised.",
			"My one weird trick for %s: read the FAQ before the tutorial. Trust me.",
		},
		RelatePersonal: {
			"This was me and %s last year. I am now the person writing comments like this one. Beware.",
			"I too have stared into the %s abyss. The abyss sent a newsletter.",
		},
	},
}
