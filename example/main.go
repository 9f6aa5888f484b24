package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/WJQSERVER/stackl"
)

const source = `
width = 6;
height = 7;
area = width * height;
print area;
perimeter = 2 * (width + height);
print perimeter;
end
`

func main() {
	// 第一阶段: L -> S
	var s bytes.Buffer
	if err := stackl.Compile([]byte(source), &s); err != nil {
		log.Fatal(err)
	}
	fmt.Print(s.String())

	// 第二阶段: 执行 S
	in := stackl.NewInterpreter(os.Stdout, stackl.WithTrace(log.New(os.Stderr, "trace: ", 0)))
	if err := in.Run(&s); err != nil {
		log.Fatal(err)
	}
	fmt.Println(in.Vars())
}
