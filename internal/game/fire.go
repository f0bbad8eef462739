package game

import (
	"math/rand"
	"sort"
)

// armedShot is a scheduled enemy shot waiting for its arming tick. The shooter
// is referenced by stable ID so list compaction between scheduling and firing
// cannot retarget it.
type armedShot struct {
	shooterID int
	at        int
}

// FireScheduler picks frontline shooters in volleys and releases their shots
// on a staggered schedule.
type FireScheduler struct {
	Delay     int // movement ticks between volleys
	MaxVolley int

	counter int
	armed   []armedShot
}

// Armed returns the number of shots waiting to fire.
func (fs *FireScheduler) Armed() int { return len(fs.armed) }

// frontline returns the frontmost live invader of every column, ordered by
// column. Invaders behind them cannot fire.
func frontline(invaders []*Invader) []*Invader {
	best := map[int]*Invader{}
	for _, inv := range invaders {
		if inv.Destroyed {
			continue
		}
		if cur, ok := best[inv.Column]; !ok || inv.Row > cur.Row {
			best[inv.Column] = inv
		}
	}
	out := make([]*Invader, 0, len(best))
	for _, inv := range best {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Column < out[j].Column })
	return out
}

// volleySize draws how many shots a volley fires. A lone column never fires;
// otherwise the count is uniform in [1, min(maxVolley, eligible)-1].
func volleySize(rng *rand.Rand, eligible, maxVolley int) int {
	if eligible <= 1 {
		return 0
	}
	hi := min(maxVolley, eligible) - 1
	if hi < 1 {
		return 0
	}
	return rng.Intn(hi) + 1
}

// Advance is called once per formation interval tick. It counts towards the
// next volley and schedules one when the delay is reached, returning the
// number of shots armed.
func (fs *FireScheduler) Advance(rng *rand.Rand, invaders []*Invader, now, interval int) int {
	fs.counter++
	if fs.counter < fs.Delay {
		return 0
	}
	fs.counter = 0
	return fs.Schedule(rng, invaders, now, interval)
}

// Schedule arms a volley. Shot i arms at now + i*interval; shooters are drawn
// from the frontline with replacement.
func (fs *FireScheduler) Schedule(rng *rand.Rand, invaders []*Invader, now, interval int) int {
	eligible := frontline(invaders)
	n := volleySize(rng, len(eligible), fs.MaxVolley)
	for i := 0; i < n; i++ {
		shooter := eligible[rng.Intn(len(eligible))]
		fs.armed = append(fs.armed, armedShot{shooterID: shooter.ID, at: now + i*interval})
	}
	return n
}

// Due removes every armed shot whose time has come. Shooters still alive are
// returned; shots whose shooter is gone are counted as dropped.
func (fs *FireScheduler) Due(now int, lookup func(id int) *Invader) (shooters []*Invader, dropped int) {
	kept := fs.armed[:0]
	for _, a := range fs.armed {
		if a.at > now {
			kept = append(kept, a)
			continue
		}
		if inv := lookup(a.shooterID); inv != nil && !inv.Destroyed {
			shooters = append(shooters, inv)
		} else {
			dropped++
		}
	}
	fs.armed = kept
	return shooters, dropped
}
