/*
Package playback replays a recorded trace at a chosen speed.

A Player owns a cursor over an immutable step slice. Seeking is O(1) and
never re-runs an algorithm. Play advances the cursor on a ticker and hands
each frame to a Handler, the strategy that decides how a frame is shown.

# Key Components

  - Player: cursor, speed and the play loop.
  - Handler: presentation strategy (TextHandler for terminals, JSONHandler for NDJSON).
  - Notifier: optional feedback sink (sound, haptics) fed with compare, swap,
    sorted and complete events derived from the frame being shown.

# Usage

	steps, _ := algotrace.GenerateSteps(domain.QuickSort, input)
	p := playback.NewPlayer(steps, playback.WithSpeed(2))

	if err := p.Play(ctx, playback.NewTextHandler(os.Stdout)); err != nil {
		log.Fatal(err)
	}
*/
package playback
