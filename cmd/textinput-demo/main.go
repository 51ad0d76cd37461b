// Command textinput-demo runs the text input handshake on a terminal: it
// presents one prompt, then polls for the answer the way a game loop would.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vcrobe/nojs-textinput/termprompt"
	"github.com/vcrobe/nojs-textinput/textinput"
)

func main() {
	title := flag.String("title", "Your name", "The prompt label.")
	value := flag.String("value", "", "The initial value shown in the prompt.")
	name := flag.String("name", "name", "The field name the answer is routed to.")
	strict := flag.Bool("strict", false, "Refuse a second prompt while an answer is unread.")
	tick := flag.Duration("tick", 16*time.Millisecond, "Poll interval.")
	frames := flag.Int("frames", 3, "Polls before giving up on an answer.")
	flag.Parse()

	if err := run(*title, *value, *name, *strict, *tick, *frames); err != nil {
		log.Fatalf("text input failed: %v", err)
	}
}

func run(title, value, name string, strict bool, tick time.Duration, frames int) error {
	cfg := &textinput.Config{Policy: textinput.Overwrite}
	if strict {
		cfg.Policy = textinput.RejectWhilePending
	}

	prompter := termprompt.Stdio()
	bridge := textinput.New(prompter, cfg)

	req, err := textinput.NewRequest(bridge, title, name, value)
	if err != nil {
		return err
	}
	if prompter.Err != nil {
		return fmt.Errorf("read answer: %w", prompter.Err)
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for i := 0; i < frames; i++ {
		res, ok := req.TryRecv()
		if !ok {
			<-ticker.C
			continue
		}
		if res.Cancelled {
			fmt.Fprintf(os.Stderr, "%s: cancelled\n", req.Name())
			return nil
		}
		fmt.Printf("%s = %q\n", req.Name(), res.Text)
		return nil
	}
	return errors.New("no answer received")
}
