package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gostonefire/memhashmap"
)

// Small driver exercising the full operation surface of the hash map with a handful of
// diagnosis code records plus enough generated records to force the bucket array to grow.
func main() {
	records := flag.Int("records", 200, "Number of generated records to load besides the demo records")
	dump := flag.Bool("dump", false, "Dump all stored records to stdout before exiting")
	flag.Parse()

	hashMap, info, err := memhashmap.NewMemHashMap(nil)
	if err != nil {
		log.Fatalf("Failed to create hash map: %v", err)
	}
	defer hashMap.Close()

	log.Printf("Created hash map with %d buckets (max load factor %.2f)", info.NumberOfBuckets, info.MaxLoadFactor)

	if err = hashMap.Set([]byte("Influenza"), []byte("J11.1")); err != nil {
		log.Fatalf("Failed to set record: %v", err)
	}
	if err = hashMap.Set([]byte("Cough"), []byte("symptom")); err != nil {
		log.Fatalf("Failed to set record: %v", err)
	}

	for i := 0; i < *records; i++ {
		key := []byte(fmt.Sprintf("condition-%04d", i))
		value := []byte(fmt.Sprintf("code-%04d", i))
		if err = hashMap.Set(key, value); err != nil {
			log.Fatalf("Failed to set record #%d: %v", i, err)
		}
	}

	value, err := hashMap.Get([]byte("Influenza"))
	if err != nil {
		log.Fatalf("Failed to get record: %v", err)
	}
	log.Printf("Influenza -> %s", value)

	if err = hashMap.Delete([]byte("Cough")); err != nil {
		log.Fatalf("Failed to delete record: %v", err)
	}
	log.Printf("Deleted Cough, %d records left", hashMap.Len())

	stat, err := hashMap.Stat(false)
	if err != nil {
		log.Fatalf("Failed to collect statistics: %v", err)
	}
	log.Printf("Records: %d, buckets: %d, used buckets: %d, max chain: %d, collisions: %d",
		stat.Records, stat.NumberOfBuckets, stat.UsedBuckets, stat.MaxChainLength, stat.TotalCollisions)

	if *dump {
		if err = hashMap.Dump(os.Stdout); err != nil {
			log.Fatalf("Failed to dump records: %v", err)
		}
	}
}
